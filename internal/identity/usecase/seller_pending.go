package usecase

import (
	"context"
	"log/slog"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type SellerPendingOutput struct {
	Sellers []entity.Account
}

// SellerPending lists verified seller accounts waiting for an admin decision.
func (s *Usecase) SellerPending(ctx context.Context) (*SellerPendingOutput, error) {
	ctx, span := s.startSpan(ctx, "SellerPending")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentitySellerQueue, constant.PermActRead); err != nil {
		return nil, err
	}

	sellers, err := s.repoDB.GetPendingSellers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list pending sellers", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SellerPendingOutput{Sellers: sellers}, nil
}
