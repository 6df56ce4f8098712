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

func TestOtpExpiryCountdown(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return pendingAccount(email), nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.OtpExpiry(context.Background(), OtpExpiryInput{Email: "pending@example.com"})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Verified)
	assert.Equal(t, testNow.Add(3*time.Minute), out.ExpiresAt)
	assert.Equal(t, int64(180), out.SecondsLeft)
}

func TestOtpExpiryVerifiedAccount(t *testing.T) {

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
	out, err := env.uc.OtpExpiry(context.Background(), OtpExpiryInput{Email: "done@example.com"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Verified)
	assert.Zero(t, out.SecondsLeft)
}

func TestOtpExpiryNoOtpIssued(t *testing.T) {

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
	_, err := env.uc.OtpExpiry(context.Background(), OtpExpiryInput{Email: "bare@example.com"})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestOtpExpiryClampsToZero(t *testing.T) {

	// Arrange: the purge compares strictly, so an OTP expiring at this exact
	// instant survives the sweep and reads as zero seconds left.
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			acc := pendingAccount(email)
			boundary := testNow
			acc.OtpExpiresAt = &boundary
			return acc, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.OtpExpiry(context.Background(), OtpExpiryInput{Email: "boundary@example.com"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.SecondsLeft)
}

func TestOtpExpiryCondemnedAccountPurged(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		purge: func(ctx context.Context, email string, now time.Time) (bool, error) {
			return true, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	_, err := env.uc.OtpExpiry(context.Background(), OtpExpiryInput{Email: "expired@example.com"})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusGone, gerr.StatusCode())
}
