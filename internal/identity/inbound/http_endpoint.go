package inbound

import (
	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/identity/usecase"
	"github.com/pasarhub/pasar/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account registration, verification
// and administration workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new unverified account and emails a verification code.
// @Summary Register account
// @Description Creates an account in pending state and sends a one-time code to the email address.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{AccountID: resp.AccountID}, nil
}

// RequestOtp issues a fresh verification code for an unverified account.
// @Summary Request verification code
// @Description Rotates the one-time code for a pending account and emails it. An expired account is purged and reported as gone.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RequestOtpRequest true "Request payload"
// @Success 200 {object} router.successResponse{data=RequestOtpResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Email already verified"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 410 {object} router.errorResponse "Code expired, account removed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/request [post]
func (h *HTTPEndpoint) RequestOtp(r *router.Request) (any, error) {
	var req RequestOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOtp(r.Context(), usecase.RequestOtpInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return RequestOtpResponse{}, nil
}

// OtpExpiry reports how long the outstanding code stays valid.
// @Summary Query code expiry
// @Description Returns the expiry timestamp and remaining seconds of the outstanding verification code.
// @Tags Identity, Authentication
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} router.successResponse{data=OtpExpiryResponse} "Expiry info"
// @Failure 400 {object} router.errorResponse "No code issued"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 410 {object} router.errorResponse "Code expired, account removed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/expiry [get]
func (h *HTTPEndpoint) OtpExpiry(r *router.Request) (any, error) {
	resp, err := h.uc.OtpExpiry(r.Context(), usecase.OtpExpiryInput{Email: r.GetQuery("email")})
	if err != nil {
		return nil, err
	}

	if resp.Verified {
		return OtpExpiryResponse{Verified: true}, nil
	}

	expiresAt := resp.ExpiresAt
	return OtpExpiryResponse{
		ExpiresAt:   &expiresAt,
		SecondsLeft: resp.SecondsLeft,
	}, nil
}

// VerifyOtp confirms the emailed code and activates the account.
// @Summary Verify code
// @Description Activates the account when the submitted code matches the outstanding one.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body VerifyOtpRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=VerifyOtpResponse} "Account activated"
// @Failure 400 {object} router.errorResponse "Invalid code"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 410 {object} router.errorResponse "Code expired, account removed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/verify [post]
func (h *HTTPEndpoint) VerifyOtp(r *router.Request) (any, error) {
	var req VerifyOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyOtp(r.Context(), usecase.VerifyOtpInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return VerifyOtpResponse{}, nil
}

// Login authenticates a verified account and returns an access token.
// @Summary Authenticate account
// @Description Validates credentials and returns a signed access token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Email not verified or account blocked"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		AccountID:   resp.AccountID,
		Email:       resp.Email,
		Role:        resp.Role,
	}, nil
}

// Profile returns the authenticated account.
// @Summary Current account profile
// @Tags Identity, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/users/me [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		AccountID: resp.AccountID,
		Email:     resp.Email,
		Role:      resp.Role,
		Status:    resp.Status,
		Verified:  resp.Verified,
		Approved:  resp.Approved,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// UserList lists accounts for administrators.
// @Summary List accounts
// @Tags Identity, Administration
// @Produce json
// @Security BearerAuth
// @Param search query string false "Email substring filter"
// @Param role query string false "Role filter (CUSTOMER, SELLER, ADMIN)"
// @Param status query string false "Status filter (pending, active, rejected, blocked)"
// @Success 200 {object} router.successResponse{data=UserListResponse} "Accounts"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Router /api/v1/admin/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search: r.GetQuery("search"),
		Role:   r.GetQuery("role"),
		Status: r.GetQuery("status"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return UserListResponse{
		Accounts: toAccountData(resp.Accounts),
		page:     resp.Page,
		size:     resp.Size,
		total:    resp.Total,
	}, nil
}

// UserStatusUpdate blocks or reactivates an account.
// @Summary Update account status
// @Tags Identity, Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param request body UserStatusUpdateRequest true "Status payload"
// @Success 200 {object} router.successResponse{data=UserStatusUpdateResponse} "Status updated"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Router /api/v1/admin/users/{id}/status [patch]
func (h *HTTPEndpoint) UserStatusUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UserStatusUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.UserStatusUpdate(r.Context(), usecase.UserStatusUpdateInput{
		ID:     id,
		Status: req.Status,
	}); err != nil {
		return nil, err
	}

	return UserStatusUpdateResponse{}, nil
}

// UserDelete permanently removes an account.
// @Summary Delete account
// @Tags Identity, Administration
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} router.successResponse{data=UserDeleteResponse} "Account deleted"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Router /api/v1/admin/users/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return UserDeleteResponse{}, nil
}

// SellerPending lists sellers awaiting an approval decision.
// @Summary List pending sellers
// @Tags Identity, Administration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=SellerPendingResponse} "Pending sellers"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Router /api/v1/admin/sellers/pending [get]
func (h *HTTPEndpoint) SellerPending(r *router.Request) (any, error) {
	resp, err := h.uc.SellerPending(r.Context())
	if err != nil {
		return nil, err
	}

	return SellerPendingResponse{Sellers: toAccountData(resp.Sellers)}, nil
}

// SellerApprove grants a seller the right to manage products.
// @Summary Approve seller
// @Tags Identity, Administration
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} router.successResponse{data=SellerApproveResponse} "Seller approved"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "Seller not found"
// @Router /api/v1/admin/sellers/{id}/approve [post]
func (h *HTTPEndpoint) SellerApprove(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.SellerApprove(r.Context(), usecase.SellerApproveInput{ID: id}); err != nil {
		return nil, err
	}

	return SellerApproveResponse{}, nil
}

// SellerReject declines a seller application.
// @Summary Reject seller
// @Tags Identity, Administration
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} router.successResponse{data=SellerRejectResponse} "Seller rejected"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "Seller not found"
// @Router /api/v1/admin/sellers/{id}/reject [post]
func (h *HTTPEndpoint) SellerReject(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.SellerReject(r.Context(), usecase.SellerRejectInput{ID: id}); err != nil {
		return nil, err
	}

	return SellerRejectResponse{}, nil
}

func toAccountData(accounts []entity.Account) []AccountData {
	out := make([]AccountData, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, AccountData{
			AccountID: acc.ID,
			Email:     acc.Email,
			Role:      acc.Role.String(),
			Status:    acc.Status.String(),
			Verified:  acc.Verified,
			Approved:  acc.Approved,
			CreatedAt: acc.CreatedAt,
		})
	}
	return out
}
