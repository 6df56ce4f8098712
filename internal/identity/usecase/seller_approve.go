package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type SellerApproveInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) SellerApprove(ctx context.Context, in SellerApproveInput) error {
	ctx, span := s.startSpan(ctx, "SellerApprove")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentitySellerQueue, constant.PermActUpdate); err != nil {
		return err
	}

	acc, err := s.repoDB.GetAccountByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("seller not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if acc.Role != entity.RoleSeller {
		return goerror.NewBusiness("account is not a seller", goerror.CodeInvalidFormat)
	}

	if acc.Approved {
		return nil
	}

	if err := s.repoDB.ApproveSeller(ctx, acc.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo approve seller", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.publishSellerDecision(ctx, SellerDecisionEvent{
		AccountID: acc.ID,
		Email:     acc.Email,
		Approved:  true,
	})

	return nil
}
