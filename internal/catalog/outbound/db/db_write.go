package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

func (s *DB) CreateProduct(ctx context.Context, p entity.NewProduct) error {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO products (id, seller_id, title, description, price, stock, category, image_key, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8)`

	_, err = s.conn.Exec(ctx, query,
		p.ID,
		p.SellerID,
		p.Title,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
		p.Status,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}

func (s *DB) UpdateProduct(ctx context.Context, p entity.ProductPatch) error {
	ctx, span := s.startSpan(ctx, "UpdateProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE products
		SET title = $1, description = $2, price = $3, stock = $4, category = $5, status = $6, updated_at = NOW()
		WHERE id = $7 AND seller_id = $8`

	tag, err := s.conn.Exec(ctx, query,
		p.Title,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
		p.Status,
		p.ID,
		p.SellerID,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) UpdateProductImage(ctx context.Context, id, sellerID int64, imageKey string) error {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE products SET image_key = $1, updated_at = NOW() WHERE id = $2 AND seller_id = $3`

	tag, err := s.conn.Exec(ctx, query, imageKey, id, sellerID)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeleteProduct(ctx context.Context, id, sellerID int64) error {
	ctx, span := s.startSpan(ctx, "DeleteProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM products WHERE id = $1 AND seller_id = $2`

	tag, err := s.conn.Exec(ctx, query, id, sellerID)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
