package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

type OtpExpiryInput struct {
	Email string `validate:"required,email"`
}

type OtpExpiryOutput struct {
	Verified    bool
	ExpiresAt   time.Time
	SecondsLeft int64
}

func (s *Usecase) OtpExpiry(ctx context.Context, in OtpExpiryInput) (*OtpExpiryOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpExpiry")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()

	if err := s.sweepCondemned(ctx, in.Email, now); err != nil {
		return nil, err
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if acc.Verified {
		return &OtpExpiryOutput{Verified: true}, nil
	}

	if acc.OtpExpiresAt == nil {
		return nil, goerror.NewBusiness("No OTP has been issued for this account", goerror.CodeInvalidFormat)
	}

	// The sweep compares strictly, so a reading of exactly zero is reported
	// here and the purge lands on the next touch.
	secondsLeft := int64(acc.OtpExpiresAt.Sub(now) / time.Second)
	if secondsLeft < 0 {
		secondsLeft = 0
	}

	return &OtpExpiryOutput{
		ExpiresAt:   *acc.OtpExpiresAt,
		SecondsLeft: secondsLeft,
	}, nil
}
