package tests

import (
	"net/http"
	"testing"
)

func TestRegister(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-register")

	// Act & Assert
	register(t, email, "CUSTOMER")
}

func TestRegisterDuplicateEmail(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-register-dup")
	register(t, email, "CUSTOMER")

	payload := map[string]string{
		"email":    email,
		"password": "Secret123!",
		"role":     "CUSTOMER",
	}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/register", payload, "")

	// Assert
	if status != http.StatusConflict {
		t.Fatalf("expected conflict, got status=%d body=%s", status, body)
	}
}

func TestRegisterUnknownRole(t *testing.T) {

	// Arrange
	payload := map[string]string{
		"email":    uniqueEmail("real-register-role"),
		"password": "Secret123!",
		"role":     "SUPERUSER",
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/register", payload, "")

	// Assert
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected validation error, got status=%d", status)
	}
}
