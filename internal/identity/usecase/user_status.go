package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type UserStatusUpdateInput struct {
	ID     int64  `validate:"required,gt=0"`
	Status string `validate:"required,oneof=active blocked"`
}

func (s *Usecase) UserStatusUpdate(ctx context.Context, in UserStatusUpdateInput) error {
	ctx, span := s.startSpan(ctx, "UserStatusUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if clm.UserID == in.ID {
		return goerror.NewBusiness("you cannot change your own status", goerror.CodeInvalidFormat)
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

	newStatus := entity.AccountStatusFromString(in.Status)
	if acc.Status == newStatus {
		return nil
	}

	if err := s.repoDB.UpdateAccountStatus(ctx, entity.AccountStatusChange{
		ID:        acc.ID,
		OldStatus: acc.Status,
		NewStatus: newStatus,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update account status", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
