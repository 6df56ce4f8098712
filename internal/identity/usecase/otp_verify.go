package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

type VerifyOtpInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

func (s *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) error {
	ctx, span := s.startSpan(ctx, "VerifyOtp")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()

	if err := s.sweepCondemned(ctx, in.Email, now); err != nil {
		return err
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if acc.Verified {
		return goerror.NewBusiness("Email already verified", goerror.CodeInvalidFormat)
	}

	if acc.OtpCode == nil {
		return goerror.NewBusiness("No OTP has been issued for this account", goerror.CodeInvalidFormat)
	}

	activated, err := s.repoDB.ActivateByOtp(ctx, entity.OtpActivation{
		Email: in.Email,
		Code:  in.Code,
		Now:   now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo activate account by otp", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	// The stored code stays untouched on a mismatch, so the user can retry
	// within the TTL window.
	if !activated {
		return goerror.NewBusiness("Invalid OTP code", goerror.CodeInvalidFormat)
	}

	return nil
}
