package tests

import (
	"net/http"
	"net/url"
	"testing"
)

func TestOtpRequestUnknownEmail(t *testing.T) {

	// Arrange
	payload := map[string]string{"email": uniqueEmail("real-otp-unknown")}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/otp/request", payload, "")

	// Assert
	if status != http.StatusNotFound {
		t.Fatalf("expected not found, got status=%d", status)
	}
}

func TestOtpRequestAfterRegister(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-otp-request")
	register(t, email, "CUSTOMER")

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/otp/request", map[string]string{"email": email}, "")

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("otp request failed: status=%d message=%q", status, errEnv.Message)
	}
}

func TestOtpExpiryAfterRegister(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-otp-expiry")
	register(t, email, "CUSTOMER")

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/auth/otp/expiry?email="+url.QueryEscape(email), nil, "")

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("otp expiry failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		SecondsLeft int64 `json:"seconds_left"`
	}
	decodeSuccess(t, body, &data)
	if data.SecondsLeft <= 0 {
		t.Fatalf("expected positive seconds_left, got %d", data.SecondsLeft)
	}
}

func TestOtpExpiryUnknownEmail(t *testing.T) {

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/auth/otp/expiry?email="+url.QueryEscape(uniqueEmail("real-expiry-unknown")), nil, "")

	// Assert
	if status != http.StatusNotFound {
		t.Fatalf("expected not found, got status=%d", status)
	}
}

func TestOtpVerifyWrongCode(t *testing.T) {

	// Arrange
	email := uniqueEmail("real-otp-verify")
	register(t, email, "CUSTOMER")

	payload := map[string]string{
		"email": email,
		"code":  "000000",
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/otp/verify", payload, "")

	// Assert
	if status != http.StatusBadRequest {
		t.Fatalf("expected bad request, got status=%d", status)
	}

	// the failed attempt must not consume the outstanding code
	status, body := doJSON(t, http.MethodGet, "/api/v1/auth/otp/expiry?email="+url.QueryEscape(email), nil, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("otp expiry after failed verify: status=%d message=%q", status, errEnv.Message)
	}
}
