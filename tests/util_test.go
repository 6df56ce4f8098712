package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// Seed accounts expected by the real suite, see db/seed.sql.
const (
	adminEmail    = "admin@pasarhub.com"
	adminPassword = "Secret123!"

	sellerEmail    = "seller@pasarhub.com"
	sellerPassword = "Secret123!"
)

type loginData struct {
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func login(t *testing.T, email, password string) loginData {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/login", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("login failed: status=%d message=%q", status, errEnv.Message)
	}

	var data loginData
	decodeSuccess(t, body, &data)

	return data
}

func adminToken(t *testing.T) string {
	t.Helper()

	resp := login(t, adminEmail, adminPassword)
	if resp.AccessToken == "" {
		t.Fatal("missing admin access token")
	}

	return resp.AccessToken
}

func sellerToken(t *testing.T) string {
	t.Helper()

	resp := login(t, sellerEmail, sellerPassword)
	if resp.AccessToken == "" {
		t.Fatal("missing seller access token")
	}

	return resp.AccessToken
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func register(t *testing.T, email, role string) {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": "Secret123!",
		"role":     role,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/register", payload, "")
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("register failed: status=%d message=%q", status, errEnv.Message)
	}
}
