package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccessToken string
	AccountID   int64
	Email       string
	Role        string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found for login", "email", in.Email)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(acc.Password, in.Password) {
		slog.WarnContext(ctx, "account password does not match", "account_id", acc.ID)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	if !acc.Verified {
		return nil, goerror.NewBusiness("please verify your email before logging in", goerror.CodeForbidden)
	}

	if err := s.ensureAccountStatusAllowed(ctx, acc.ID, acc.Status); err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email, acc.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken: token,
		AccountID:   acc.ID,
		Email:       acc.Email,
		Role:        acc.Role.String(),
	}, nil
}
