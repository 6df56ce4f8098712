package usecase

import (
	"context"
	"log/slog"

	"github.com/pasarhub/pasar/internal/notification/entity"
)

type ConsumeSellerDecisionInput struct {
	AccountID int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	Approved  bool
}

func (s *Usecase) ConsumeSellerDecision(ctx context.Context, in ConsumeSellerDecisionInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeSellerDecision")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	trigger := entity.TriggerKeySellerRejected
	if in.Approved {
		trigger = entity.TriggerKeySellerApproved
	}

	s.sendEmailNotification(ctx, emailNotificationInput{
		AccountID:    in.AccountID,
		Email:        in.Email,
		TriggerKey:   trigger,
		TemplateData: s.baseEmailTemplateData(),
	})

	return nil
}
