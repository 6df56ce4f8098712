package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOtp(t *testing.T) {

	// Arrange
	var activation entity.OtpActivation
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return pendingAccount(email), nil
		},
		activate: func(ctx context.Context, in entity.OtpActivation) (bool, error) {
			activation = in
			return true, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: " Pending@Example.com ",
		Code:  "111111",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pending@example.com", activation.Email)
	assert.Equal(t, "111111", activation.Code)
	assert.Equal(t, testNow, activation.Now)
}

func TestVerifyOtpWrongCode(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return pendingAccount(email), nil
		},
		activate: func(ctx context.Context, in entity.OtpActivation) (bool, error) {
			return false, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: "pending@example.com",
		Code:  "000000",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	assert.Equal(t, "Invalid OTP code", gerr.Error())
}

func TestVerifyOtpAlreadyVerified(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			acc := pendingAccount(email)
			acc.Verified = true
			acc.Status = entity.AccountStatusActive
			return acc, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: "done@example.com",
		Code:  "111111",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestVerifyOtpNoOtpIssued(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			acc := pendingAccount(email)
			acc.OtpCode = nil
			acc.OtpExpiresAt = nil
			return acc, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: "bare@example.com",
		Code:  "111111",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestVerifyOtpMalformedCode(t *testing.T) {

	// Arrange
	env := newTestEnv(t, &fakeRepoDB{})

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: "pending@example.com",
		Code:  "12ab56",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
}

func TestVerifyOtpCondemnedAccountPurged(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		purge: func(ctx context.Context, email string, now time.Time) (bool, error) {
			return true, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.VerifyOtp(context.Background(), VerifyOtpInput{
		Email: "expired@example.com",
		Code:  "111111",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusGone, gerr.StatusCode())
}
