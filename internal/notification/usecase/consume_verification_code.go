package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pasarhub/pasar/internal/notification/entity"
)

type ConsumeVerificationCodeInput struct {
	AccountID int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	Code      string `validate:"required,len=6,numeric"`
	ExpiresAt time.Time
}

func (s *Usecase) ConsumeVerificationCode(ctx context.Context, in ConsumeVerificationCodeInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeVerificationCode")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["code"] = in.Code
	data["ttl_minutes"] = s.cfg.GetInt("modules.identity.otp_ttl_minutes")
	data["expires_at"] = in.ExpiresAt.Format(time.RFC1123)

	s.sendEmailNotification(ctx, emailNotificationInput{
		AccountID:    in.AccountID,
		Email:        in.Email,
		TriggerKey:   entity.TriggerKeyVerificationCode,
		TemplateData: data,
	})

	return nil
}
