package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pasarhub/pasar/internal/notification/entity"
	"github.com/pasarhub/pasar/internal/pkg/mail"
	"github.com/pasarhub/pasar/internal/pkg/valueobject"
)

type emailNotificationInput struct {
	AccountID    int64
	Email        string
	TriggerKey   entity.TriggerKey
	TemplateData map[string]any
}

// sendEmailNotification renders the template for the trigger, records a
// queued delivery log row, sends the mail and settles the row to sent or
// failed. Every failure is logged and swallowed: delivery is never a
// precondition for the state change that produced the event.
func (s *Usecase) sendEmailNotification(ctx context.Context, in emailNotificationInput) {
	tpl := s.getTemplate(ctx, in.TriggerKey, entity.ChannelEmail)
	if tpl == nil {
		return
	}

	body, err := s.renderTemplate("body", tpl.Body, in.TemplateData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render email body", "account_id", in.AccountID, "trigger_key", in.TriggerKey.String(), "error", err)
		return
	}

	dl := entity.CreateDeliveryLog{
		ID:         s.uid.Generate(),
		AccountID:  in.AccountID,
		Recipient:  in.Email,
		TriggerKey: in.TriggerKey,
		Channel:    entity.ChannelEmail,
		Status:     entity.DeliveryStatusQueued,
	}
	if err := s.repoDB.CreateDeliveryLog(ctx, dl); err != nil {
		slog.ErrorContext(ctx, "failed to repo create delivery log", "account_id", in.AccountID, "trigger_key", in.TriggerKey.String(), "error", err)
		return
	}

	mailErr := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  tpl.Subject,
		HTMLBody: body,
	})
	if mailErr == nil {
		up := entity.UpdateDeliveryLog{
			ID:               dl.ID,
			Status:           entity.DeliveryStatusSent,
			ProviderResponse: valueobject.JSONMap{},
		}
		if err := s.repoDB.UpdateDeliveryLogStatus(ctx, up); err != nil {
			slog.ErrorContext(ctx, "failed to repo update delivery log status sent", "log_id", dl.ID, "error", err)
		}
		return
	}

	backoff := s.cfg.GetMinute("modules.notification.retry_backoff_minutes")
	if backoff <= 0 {
		backoff = 2 * time.Minute
	}
	nextRetry := s.clock.Now().Add(backoff)
	up := entity.UpdateDeliveryLog{
		ID:               dl.ID,
		Status:           entity.DeliveryStatusFailed,
		ProviderResponse: valueobject.JSONMap{"error": mailErr.Error()},
		NextRetryAt:      &nextRetry,
	}
	if err := s.repoDB.UpdateDeliveryLogStatus(ctx, up); err != nil {
		slog.ErrorContext(ctx, "failed to repo update delivery log status failed", "log_id", dl.ID, "error", err)
	}

	slog.ErrorContext(ctx, "failed to send notification email", "log_id", dl.ID, "account_id", in.AccountID, "trigger_key", in.TriggerKey.String(), "error", mailErr)
}
