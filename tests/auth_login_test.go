package tests

import (
	"net/http"
	"testing"
)

func TestLoginAdmin(t *testing.T) {

	// Act
	resp := login(t, adminEmail, adminPassword)

	// Assert
	if resp.AccessToken == "" {
		t.Fatal("missing access token")
	}
	if resp.Role != "ADMIN" {
		t.Fatalf("expected ADMIN role, got %q", resp.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {

	// Arrange
	payload := map[string]string{
		"email":    adminEmail,
		"password": "not-the-password",
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/login", payload, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got status=%d", status)
	}
}

func TestLoginUnverifiedAccount(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-login-unverified")
	register(t, email, "CUSTOMER")

	payload := map[string]string{
		"email":    email,
		"password": "Secret123!",
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/login", payload, "")

	// Assert
	if status != http.StatusForbidden {
		t.Fatalf("expected forbidden, got status=%d", status)
	}
}

func TestProfileRequiresToken(t *testing.T) {

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/users/me", nil, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got status=%d", status)
	}
}

func TestProfile(t *testing.T) {

	// Arrange
	token := adminToken(t)

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/users/me", nil, token)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("profile failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		Email string `json:"email"`
	}
	decodeSuccess(t, body, &data)
	if data.Email != adminEmail {
		t.Fatalf("expected %q, got %q", adminEmail, data.Email)
	}
}
