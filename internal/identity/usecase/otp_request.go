package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/idempotency"
)

type RequestOtpInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) RequestOtp(ctx context.Context, in RequestOtpInput) error {
	ctx, span := s.startSpan(ctx, "RequestOtp")
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

	// Absorb double-submits while a send is still in flight.
	err = s.idemp.Exec(ctx, "otp_request:"+in.Email, func(ctx context.Context) error {
		code, err := s.otp.Generate()
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
			return goerror.NewServer(err)
		}

		rotation := entity.OtpRotation{
			AccountID: acc.ID,
			Code:      code,
			ExpiresAt: now.Add(s.otpTTL()),
		}

		if err := s.repoDB.RotateOtp(ctx, rotation); err != nil {
			slog.ErrorContext(ctx, "failed to repo rotate otp", "account_id", acc.ID, "error", err)
			return goerror.NewServer(err)
		}

		s.publishVerificationCode(ctx, VerificationCodeEvent{
			AccountID: acc.ID,
			Email:     acc.Email,
			Code:      rotation.Code,
			ExpiresAt: rotation.ExpiresAt,
		})

		return nil
	}, idempotency.WithLockDuration(10*time.Second), idempotency.WithStateTTL(10*time.Second))

	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		slog.InfoContext(ctx, "otp request already handled", "account_id", acc.ID)
		return nil
	}
	if errors.Is(err, idempotency.ErrAlreadyFailed) {
		return goerror.NewBusiness("Please retry in a moment", goerror.CodeTooManyRequest)
	}

	return err
}
