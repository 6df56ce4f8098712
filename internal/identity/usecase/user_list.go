package usecase

import (
	"context"
	"log/slog"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type UserListInput struct {
	Search string // value already trimmed
	Role   string
	Status string
	Size   int32
	Page   int32
}

type UserListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Accounts []entity.Account
}

func (s *Usecase) UserList(ctx context.Context, in UserListInput) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActRead); err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}
	filterData := entity.AccountListFilterData{
		Search: in.Search,
		Role:   entity.RoleFromString(in.Role),
		Status: entity.AccountStatusFromString(in.Status),
		Size:   in.Size,
		Page:   (max(in.Page, 1) - 1) * in.Size,
	}
	if in.Search != "" {
		filterData.IsFilterBySearch = true
	}
	if !filterData.Role.IsUnknown() {
		filterData.IsFilterByRole = true
	}
	if !filterData.Status.IsUnknown() {
		filterData.IsFilterByStatus = true
	}

	accounts, count, err := s.repoDB.GetAccountList(ctx, filterData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list accounts", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserListOutput{
		Page:     max(in.Page, 1),
		Size:     in.Size,
		Total:    count,
		Accounts: accounts,
	}, nil
}
