package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

func (s *DB) UpdateAccountStatus(ctx context.Context, ch entity.AccountStatusChange) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAccountStatus")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE accounts SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`,
		ch.ID, ch.OldStatus, ch.NewStatus)
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

func (s *DB) ApproveSeller(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "ApproveSeller")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE accounts SET approved = TRUE, updated_at = NOW() WHERE id = $1 AND role = $2`,
		id, entity.RoleSeller)
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

func (s *DB) RejectSeller(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "RejectSeller")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`UPDATE accounts SET approved = FALSE, status = $2, updated_at = NOW() WHERE id = $1 AND role = $3`,
		id, entity.AccountStatusRejected, entity.RoleSeller)
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

func (s *DB) DeleteAccount(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteAccount")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
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
