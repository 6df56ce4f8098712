package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Role     string `validate:"required,oneof=CUSTOMER SELLER"`
}

type RegisterOutput struct {
	AccountID int64
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()

	// A leftover expired registration must not block the email.
	if err := s.sweepCondemned(ctx, in.Email, now); err != nil {
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeGone {
			return nil, err
		}
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	acc := entity.NewAccount{
		ID:           s.uid.Generate(),
		Email:        in.Email,
		Role:         entity.RoleFromString(in.Role),
		Status:       entity.AccountStatusPending,
		OtpCode:      code,
		OtpExpiresAt: now.Add(s.otpTTL()),
	}

	if err := s.repoDB.CreateAccount(ctx, acc, string(hashedPassword)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create account", "email", acc.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.publishVerificationCode(ctx, VerificationCodeEvent{
		AccountID: acc.ID,
		Email:     acc.Email,
		Code:      acc.OtpCode,
		ExpiresAt: acc.OtpExpiresAt,
	})

	return &RegisterOutput{AccountID: acc.ID}, nil
}
