package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/clock"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/goroutine"
	"github.com/pasarhub/pasar/internal/pkg/hash"
	"github.com/pasarhub/pasar/internal/pkg/idempotency"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/jwt"
	"github.com/pasarhub/pasar/internal/pkg/otp"
	"github.com/pasarhub/pasar/internal/pkg/uid"
	"github.com/pasarhub/pasar/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type VerificationCodeEvent struct {
	AccountID int64
	Email     string
	Code      string
	ExpiresAt time.Time
}

type SellerDecisionEvent struct {
	AccountID int64
	Email     string
	Approved  bool
}

type repoMessaging interface {
	PublishVerificationCode(ctx context.Context, msg VerificationCodeEvent) error
	PublishSellerDecision(ctx context.Context, msg SellerDecisionEvent) error
}

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)
	GetAccountList(ctx context.Context, filter entity.AccountListFilterData) ([]entity.Account, int64, error)
	GetPendingSellers(ctx context.Context) ([]entity.Account, error)

	CreateAccount(ctx context.Context, acc entity.NewAccount, hash string) error
	RotateOtp(ctx context.Context, in entity.OtpRotation) error
	ActivateByOtp(ctx context.Context, in entity.OtpActivation) (bool, error)
	PurgeIfUnverifiedAndExpired(ctx context.Context, email string, now time.Time) (bool, error)

	UpdateAccountStatus(ctx context.Context, ch entity.AccountStatusChange) error
	ApproveSeller(ctx context.Context, id int64) error
	RejectSeller(ctx context.Context, id int64) error
	DeleteAccount(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	return s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
}

// sweepCondemned purges the account when it is unverified and its OTP has
// already expired. The same instant is used for the purge decision and for
// every decision the caller makes afterwards.
func (s *Usecase) sweepCondemned(ctx context.Context, email string, now time.Time) error {
	purged, err := s.repoDB.PurgeIfUnverifiedAndExpired(ctx, email, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo purge condemned account", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if purged {
		slog.InfoContext(ctx, "purged expired unverified account", "email", email)
		return goerror.NewBusiness("OTP expired and account removed, please register again", goerror.CodeGone)
	}

	return nil
}

func (s *Usecase) ensureAccountStatusAllowed(ctx context.Context, accountID int64, status entity.AccountStatus) error {
	switch status.Ensure() {
	case entity.AccountStatusBlocked:
		slog.WarnContext(ctx, "account is blocked", "account_id", accountID)
		return goerror.NewBusiness("account is blocked", goerror.CodeForbidden)

	case entity.AccountStatusRejected:
		slog.WarnContext(ctx, "account application is rejected", "account_id", accountID)
		return goerror.NewBusiness("account application was rejected", goerror.CodeForbidden)

	case entity.AccountStatusUnknown:
		slog.WarnContext(ctx, "account status is unrecognized", "account_id", accountID)
		return goerror.NewBusiness("account status is unrecognized", goerror.CodeForbidden)

	default:
		return nil
	}
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.Subject, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "account_id", clm.Subject, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}

// publishVerificationCode dispatches the code email event without blocking
// the caller. Delivery failure never fails the state transition.
func (s *Usecase) publishVerificationCode(ctx context.Context, ev VerificationCodeEvent) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishVerificationCode(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to publish verification code", "account_id", ev.AccountID, "error", err)
		}
		return nil
	})
}

// publishSellerDecision dispatches the approval/rejection email event
// without blocking the caller.
func (s *Usecase) publishSellerDecision(ctx context.Context, ev SellerDecisionEvent) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishSellerDecision(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to publish seller decision", "account_id", ev.AccountID, "error", err)
		}
		return nil
	})
}
