package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/notification/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

func (s *DB) CreateDeliveryLog(ctx context.Context, dl entity.CreateDeliveryLog) error {
	ctx, span := s.startSpan(ctx, "CreateDeliveryLog")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO notification_delivery_logs (id, account_id, recipient, trigger_key, channel, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.conn.Exec(ctx, query,
		dl.ID,
		dl.AccountID,
		dl.Recipient,
		dl.TriggerKey.String(),
		dl.Channel,
		dl.Status,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}

func (s *DB) UpdateDeliveryLogStatus(ctx context.Context, u entity.UpdateDeliveryLog) error {
	ctx, span := s.startSpan(ctx, "UpdateDeliveryLogStatus")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE notification_delivery_logs
		SET status = $1, provider_response = $2, next_retry_at = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := s.conn.Exec(ctx, query, u.Status, u.ProviderResponse, u.NextRetryAt, u.ID)
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
