package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/idempotency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAccount(email string) *entity.Account {
	code := "111111"
	expires := testNow.Add(3 * time.Minute)
	return &entity.Account{
		ID:           42,
		Email:        email,
		Password:     "hashed:Secret123!",
		Role:         entity.RoleCustomer,
		Status:       entity.AccountStatusPending,
		OtpCode:      &code,
		OtpExpiresAt: &expires,
	}
}

func TestRequestOtpRotatesCode(t *testing.T) {

	// Arrange
	var rotated entity.OtpRotation
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return pendingAccount(email), nil
		},
		rotate: func(ctx context.Context, in entity.OtpRotation) error {
			rotated = in
			return nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "pending@example.com"})
	env.drain()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), rotated.AccountID)
	assert.Equal(t, "123456", rotated.Code)
	assert.Equal(t, testNow.Add(5*time.Minute), rotated.ExpiresAt)

	codes := env.msg.publishedCodes()
	require.Len(t, codes, 1)
	assert.Equal(t, "123456", codes[0].Code)
}

func TestRequestOtpUnknownAccount(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return nil, goerror.ErrNotFound
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "ghost@example.com"})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusNotFound, gerr.StatusCode())
}

func TestRequestOtpAlreadyVerified(t *testing.T) {

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
	err := env.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "done@example.com"})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestRequestOtpCondemnedAccountPurged(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		purge: func(ctx context.Context, email string, now time.Time) (bool, error) {
			return true, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	err := env.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "expired@example.com"})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusGone, gerr.StatusCode())
	assert.Empty(t, env.msg.publishedCodes())
}

func TestRequestOtpDoubleSubmitAbsorbed(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return pendingAccount(email), nil
		},
	}
	env := newTestEnv(t, repo)
	env.uc.idemp = &fakeIdempotency{err: idempotency.ErrAlreadyInProgress}

	// Act
	err := env.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "pending@example.com"})

	// Assert: an in-flight send is treated as success
	require.NoError(t, err)
	assert.Empty(t, env.msg.publishedCodes())
}
