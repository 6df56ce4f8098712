package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/catalog/entity"
)

func (s *DB) GetPublicProducts(ctx context.Context, filter entity.ProductListFilterData) ([]entity.ProductListing, int64, error) {
	ctx, span := s.startSpan(ctx, "GetPublicProducts")
	var err error
	defer func() { s.endSpan(span, err) }()

	where := " WHERE p.status = " + itoa(int(entity.ProductStatusActive))
	args := []any{}

	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		where += " AND p.title ILIKE $" + itoa(len(args))
	}

	if filter.IsFilterByCategory {
		args = append(args, filter.Category)
		where += " AND p.category = $" + itoa(len(args))
	}

	from := ` FROM products p JOIN accounts a ON a.id = p.seller_id`

	var total int64
	err = s.conn.QueryRow(ctx, `SELECT COUNT(*)`+from+where, args...).Scan(&total)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	args = append(args, filter.Size)
	limit := " LIMIT $" + itoa(len(args))
	args = append(args, filter.Page)
	offset := " OFFSET $" + itoa(len(args))

	query := `SELECT ` + productColumns + `, a.email` + from + where +
		` ORDER BY p.created_at DESC, p.id DESC` + limit + offset

	rows, qErr := s.conn.Query(ctx, query, args...)
	if qErr != nil {
		err = s.mapError(qErr)
		return nil, 0, err
	}
	defer rows.Close()

	listings := make([]entity.ProductListing, 0, filter.Size)
	for rows.Next() {
		l, sErr := scanListing(rows)
		if sErr != nil {
			err = s.mapError(sErr)
			return nil, 0, err
		}
		listings = append(listings, *l)
	}

	if err = rows.Err(); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	return listings, total, nil
}

func (s *DB) GetPublicProductByID(ctx context.Context, id int64) (*entity.ProductListing, error) {
	ctx, span := s.startSpan(ctx, "GetPublicProductByID")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + productColumns + `, a.email
		FROM products p
		JOIN accounts a ON a.id = p.seller_id
		WHERE p.id = $1 AND p.status = $2`

	l, err := scanListing(s.conn.QueryRow(ctx, query, id, entity.ProductStatusActive))
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return l, nil
}

func (s *DB) GetProductsBySeller(ctx context.Context, sellerID int64) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetProductsBySeller")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + productColumns + `
		FROM products p
		WHERE p.seller_id = $1
		ORDER BY p.created_at DESC, p.id DESC`

	rows, qErr := s.conn.Query(ctx, query, sellerID)
	if qErr != nil {
		err = s.mapError(qErr)
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		p, sErr := scanProduct(rows)
		if sErr != nil {
			err = s.mapError(sErr)
			return nil, err
		}
		products = append(products, *p)
	}

	if err = rows.Err(); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return products, nil
}

func (s *DB) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetProductByID")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	p, err := scanProduct(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return p, nil
}

func (s *DB) GetSellerApproved(ctx context.Context, sellerID int64) (bool, error) {
	ctx, span := s.startSpan(ctx, "GetSellerApproved")
	var err error
	defer func() { s.endSpan(span, err) }()

	var approved bool
	err = s.conn.QueryRow(ctx, `SELECT approved FROM accounts WHERE id = $1`, sellerID).Scan(&approved)
	if err != nil {
		err = s.mapError(err)
		return false, err
	}

	return approved, nil
}
