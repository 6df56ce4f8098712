package inbound

import (
	"context"

	"github.com/pasarhub/pasar/internal/identity/usecase"
	"github.com/pasarhub/pasar/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	RequestOtp(ctx context.Context, in usecase.RequestOtpInput) error
	OtpExpiry(ctx context.Context, in usecase.OtpExpiryInput) (*usecase.OtpExpiryOutput, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserStatusUpdate(ctx context.Context, in usecase.UserStatusUpdateInput) error
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error

	SellerPending(ctx context.Context) (*usecase.SellerPendingOutput, error)
	SellerApprove(ctx context.Context, in usecase.SellerApproveInput) error
	SellerReject(ctx context.Context, in usecase.SellerRejectInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration & Verification
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/otp/request", end.RequestOtp)
	r.GET("/api/v1/auth/otp/expiry", end.OtpExpiry)
	r.POST("/api/v1/auth/otp/verify", end.VerifyOtp)
	r.POST("/api/v1/auth/login", end.Login)

	// Profile
	r.GET("/api/v1/users/me", end.Profile)

	// Administration
	r.GET("/api/v1/admin/users", end.UserList)
	r.PATCH("/api/v1/admin/users/:id/status", end.UserStatusUpdate)
	r.DELETE("/api/v1/admin/users/:id", end.UserDelete)
	r.GET("/api/v1/admin/sellers/pending", end.SellerPending)
	r.POST("/api/v1/admin/sellers/:id/approve", end.SellerApprove)
	r.POST("/api/v1/admin/sellers/:id/reject", end.SellerReject)
}
