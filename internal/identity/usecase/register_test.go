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

func TestRegister(t *testing.T) {

	// Arrange
	var created entity.NewAccount
	var createdHash string
	repo := &fakeRepoDB{
		create: func(ctx context.Context, acc entity.NewAccount, hash string) error {
			created = acc
			createdHash = hash
			return nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.Register(context.Background(), RegisterInput{
		Email:    "  New.User@Example.COM ",
		Password: "Secret123!",
		Role:     "CUSTOMER",
	})
	env.drain()

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.AccountID)
	assert.Equal(t, "new.user@example.com", created.Email)
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.Equal(t, entity.AccountStatusPending, created.Status)
	assert.Equal(t, "123456", created.OtpCode)
	assert.Equal(t, testNow.Add(5*time.Minute), created.OtpExpiresAt)
	assert.Equal(t, "hashed:Secret123!", createdHash)

	codes := env.msg.publishedCodes()
	require.Len(t, codes, 1)
	assert.Equal(t, "new.user@example.com", codes[0].Email)
	assert.Equal(t, "123456", codes[0].Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		create: func(ctx context.Context, acc entity.NewAccount, hash string) error {
			return goerror.ErrConflict
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.Register(context.Background(), RegisterInput{
		Email:    "dup@example.com",
		Password: "Secret123!",
		Role:     "SELLER",
	})
	env.drain()

	// Assert
	require.Error(t, err)
	assert.Nil(t, out)
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusConflict, gerr.StatusCode())
	assert.Empty(t, env.msg.publishedCodes())
}

func TestRegisterReclaimsCondemnedEmail(t *testing.T) {

	// Arrange: a leftover expired registration is purged and the email is
	// immediately reusable.
	purged := false
	repo := &fakeRepoDB{
		purge: func(ctx context.Context, email string, now time.Time) (bool, error) {
			purged = true
			return true, nil
		},
		create: func(ctx context.Context, acc entity.NewAccount, hash string) error {
			return nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.Register(context.Background(), RegisterInput{
		Email:    "again@example.com",
		Password: "Secret123!",
		Role:     "CUSTOMER",
	})
	env.drain()

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, purged)
}

func TestRegisterUnknownRole(t *testing.T) {

	// Arrange
	env := newTestEnv(t, &fakeRepoDB{})

	// Act
	out, err := env.uc.Register(context.Background(), RegisterInput{
		Email:    "role@example.com",
		Password: "Secret123!",
		Role:     "ADMIN",
	})

	// Assert
	require.Error(t, err)
	assert.Nil(t, out)
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
}
