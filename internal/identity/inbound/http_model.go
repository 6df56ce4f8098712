package inbound

import (
	"net/http"
	"time"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	AccountID int64 `json:"account_id,string"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. Please check your email for the verification code."
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type RequestOtpRequest struct {
	Email string `json:"email"`
}

type RequestOtpResponse struct{}

func (RequestOtpResponse) Message() string {
	return "A verification code has been sent to your email."
}

type OtpExpiryResponse struct {
	Verified    bool       `json:"verified,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	SecondsLeft int64      `json:"seconds_left"`
}

type VerifyOtpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type VerifyOtpResponse struct{}

func (VerifyOtpResponse) Message() string {
	return "Email verified successfully. You can now log in."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	AccountID   int64  `json:"account_id,string"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type ProfileResponse struct {
	AccountID int64     `json:"account_id,string"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Verified  bool      `json:"verified"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type AccountData struct {
	AccountID int64     `json:"account_id,string"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Verified  bool      `json:"verified"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Accounts []AccountData `json:"accounts"`

	page  int32
	size  int32
	total int64
}

func (r UserListResponse) Meta() map[string]any {
	return map[string]any{
		"page":  r.page,
		"size":  r.size,
		"total": r.total,
	}
}

type UserStatusUpdateRequest struct {
	Status string `json:"status"`
}

type UserStatusUpdateResponse struct{}

func (UserStatusUpdateResponse) Message() string {
	return "Account status updated."
}

type UserDeleteResponse struct{}

func (UserDeleteResponse) Message() string {
	return "Account deleted."
}

type SellerPendingResponse struct {
	Sellers []AccountData `json:"sellers"`
}

type SellerApproveResponse struct{}

func (SellerApproveResponse) Message() string {
	return "Seller approved."
}

type SellerRejectResponse struct{}

func (SellerRejectResponse) Message() string {
	return "Seller rejected."
}
