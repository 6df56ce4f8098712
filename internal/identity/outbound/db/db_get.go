package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/identity/entity"
)

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)

	acc, err := scanAccount(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return acc, nil
}

func (s *DB) GetAccountByID(ctx context.Context, id int64) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	acc, err := scanAccount(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return acc, nil
}

func (s *DB) GetAccountList(ctx context.Context, filter entity.AccountListFilterData) (_ []entity.Account, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountList")
	defer func() { s.endSpan(span, err) }()

	where := ` WHERE TRUE`
	args := make([]any, 0, 5)

	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		where += ` AND email ILIKE $` + itoa(len(args))
	}
	if filter.IsFilterByRole {
		args = append(args, filter.Role)
		where += ` AND role = $` + itoa(len(args))
	}
	if filter.IsFilterByStatus {
		args = append(args, filter.Status)
		where += ` AND status = $` + itoa(len(args))
	}

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	args = append(args, filter.Size)
	limit := ` LIMIT $` + itoa(len(args))
	args = append(args, filter.Page)
	offset := ` OFFSET $` + itoa(len(args))

	rows, err := s.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts`+where+` ORDER BY created_at DESC`+limit+offset, args...)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}
	defer rows.Close()

	accounts := make([]entity.Account, 0, filter.Size)
	for rows.Next() {
		acc, sErr := scanAccount(rows)
		if sErr != nil {
			err = s.mapError(sErr)
			return nil, 0, err
		}
		accounts = append(accounts, *acc)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (s *DB) GetPendingSellers(ctx context.Context) (_ []entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetPendingSellers")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE role = $1 AND verified = TRUE AND approved = FALSE AND status = $2
		 ORDER BY created_at ASC`,
		entity.RoleSeller, entity.AccountStatusActive)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	sellers := make([]entity.Account, 0)
	for rows.Next() {
		acc, sErr := scanAccount(rows)
		if sErr != nil {
			err = s.mapError(sErr)
			return nil, err
		}
		sellers = append(sellers, *acc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}
