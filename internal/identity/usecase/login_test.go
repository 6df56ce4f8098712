package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAccount(email string) *entity.Account {
	return &entity.Account{
		ID:       7,
		Email:    email,
		Password: "hashed:Secret123!",
		Role:     entity.RoleSeller,
		Status:   entity.AccountStatusActive,
		Verified: true,
	}
}

func TestLogin(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return activeAccount(email), nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	out, err := env.uc.Login(context.Background(), LoginInput{
		Email:    "Seller@Example.com",
		Password: "Secret123!",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, int64(7), out.AccountID)
	assert.Equal(t, "seller@example.com", out.Email)
	assert.Equal(t, "SELLER", out.Role)
}

func TestLoginUnknownEmail(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return nil, goerror.ErrNotFound
		},
	}
	env := newTestEnv(t, repo)

	// Act
	_, err := env.uc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "Secret123!",
	})

	// Assert: indistinguishable from a wrong password
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
}

func TestLoginWrongPassword(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			return activeAccount(email), nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	_, err := env.uc.Login(context.Background(), LoginInput{
		Email:    "seller@example.com",
		Password: "wrong-password",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
}

func TestLoginUnverifiedAccount(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			acc := activeAccount(email)
			acc.Verified = false
			acc.Status = entity.AccountStatusPending
			return acc, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	_, err := env.uc.Login(context.Background(), LoginInput{
		Email:    "pending@example.com",
		Password: "Secret123!",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusForbidden, gerr.StatusCode())
}

func TestLoginBlockedAccount(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		getByEmail: func(ctx context.Context, email string) (*entity.Account, error) {
			acc := activeAccount(email)
			acc.Status = entity.AccountStatusBlocked
			return acc, nil
		},
	}
	env := newTestEnv(t, repo)

	// Act
	_, err := env.uc.Login(context.Background(), LoginInput{
		Email:    "blocked@example.com",
		Password: "Secret123!",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusForbidden, gerr.StatusCode())
}
