package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type UserDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActDelete)
	if err != nil {
		return err
	}

	if clm.UserID == in.ID {
		return goerror.NewBusiness("you cannot delete your own account", goerror.CodeInvalidFormat)
	}

	acc, err := s.repoDB.GetAccountByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "account_id", in.ID)
		return goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteAccount(ctx, acc.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete account", "account_id", acc.ID, "by_account_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
