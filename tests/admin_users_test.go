package tests

import (
	"net/http"
	"net/url"
	"testing"
)

func TestAdminUsersList(t *testing.T) {

	// Arrange
	token := adminToken(t)

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/admin/users?size=10&page=1", nil, token)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("user list failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		Accounts []struct {
			Email string `json:"email"`
		} `json:"accounts"`
	}
	env := decodeSuccess(t, body, &data)
	if len(data.Accounts) == 0 {
		t.Fatal("expected at least one account")
	}
	if env.Meta["total"] == nil {
		t.Fatal("expected total in meta")
	}
}

func TestAdminUsersListSearch(t *testing.T) {

	// Arrange
	token := adminToken(t)
	email := uniqueEmail("real-admin-search")
	register(t, email, "CUSTOMER")

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/admin/users?search="+url.QueryEscape(email), nil, token)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("user search failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		Accounts []struct {
			Email string `json:"email"`
		} `json:"accounts"`
	}
	decodeSuccess(t, body, &data)
	if len(data.Accounts) != 1 || data.Accounts[0].Email != email {
		t.Fatalf("expected exactly the registered account, got %+v", data.Accounts)
	}
}

func TestAdminUsersListForbiddenForSeller(t *testing.T) {

	// Arrange
	token := sellerToken(t)

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/admin/users", nil, token)

	// Assert
	if status != http.StatusForbidden {
		t.Fatalf("expected forbidden, got status=%d", status)
	}
}

func TestAdminSellersPending(t *testing.T) {

	// Arrange
	token := adminToken(t)

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/admin/sellers/pending", nil, token)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("pending sellers failed: status=%d message=%q", status, errEnv.Message)
	}
}
