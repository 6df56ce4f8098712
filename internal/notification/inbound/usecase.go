package inbound

import (
	"context"

	"github.com/pasarhub/pasar/internal/notification/usecase"
)

type uc interface {
	ConsumeVerificationCode(ctx context.Context, in usecase.ConsumeVerificationCodeInput) error
	ConsumeSellerDecision(ctx context.Context, in usecase.ConsumeSellerDecisionInput) error
}
