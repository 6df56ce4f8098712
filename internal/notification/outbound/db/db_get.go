package db

import (
	"context"

	"github.com/pasarhub/pasar/internal/notification/entity"
)

func (s *DB) GetTemplateByTriggerChannel(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
	ctx, span := s.startSpan(ctx, "GetTemplateByTriggerChannel")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, trigger_key, channel, subject, body
		FROM notification_templates
		WHERE trigger_key = $1 AND channel = $2`

	var tpl entity.Template
	err = s.conn.QueryRow(ctx, query, tk.String(), ch).Scan(
		&tpl.ID,
		&tpl.TriggerKey,
		&tpl.Channel,
		&tpl.Subject,
		&tpl.Body,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &tpl, nil
}
