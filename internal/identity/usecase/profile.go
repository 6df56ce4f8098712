package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/jwt"
)

type ProfileOutput struct {
	AccountID int64
	Email     string
	Role      string
	Status    string
	Verified  bool
	Approved  bool
	CreatedAt time.Time
}

func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	acc, err := s.repoDB.GetAccountByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		AccountID: acc.ID,
		Email:     acc.Email,
		Role:      acc.Role.String(),
		Status:    acc.Status.String(),
		Verified:  acc.Verified,
		Approved:  acc.Approved,
		CreatedAt: acc.CreatedAt,
	}, nil
}
