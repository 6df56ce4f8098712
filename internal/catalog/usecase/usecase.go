package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/clock"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/jwt"
	"github.com/pasarhub/pasar/internal/pkg/storage"
	"github.com/pasarhub/pasar/internal/pkg/uid"
	"github.com/pasarhub/pasar/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetPublicProducts(ctx context.Context, filter entity.ProductListFilterData) ([]entity.ProductListing, int64, error)
	GetPublicProductByID(ctx context.Context, id int64) (*entity.ProductListing, error)
	GetProductsBySeller(ctx context.Context, sellerID int64) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
	GetSellerApproved(ctx context.Context, sellerID int64) (bool, error)

	CreateProduct(ctx context.Context, p entity.NewProduct) error
	UpdateProduct(ctx context.Context, p entity.ProductPatch) error
	UpdateProductImage(ctx context.Context, id, sellerID int64, imageKey string) error
	DeleteProduct(ctx context.Context, id, sellerID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	storage   storage.Storage
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
	enforcer  *casbin.Enforcer
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Storage    storage.Storage
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Enforcer   *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		storage:   dep.Storage,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		enforcer:  dep.Enforcer,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
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

// approvedSeller gates product management: the seller must be authorized by
// policy and approved by an admin.
func (s *Usecase) approvedSeller(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm, err := s.authenticatedAndAuthorized(ctx, obj, act)
	if err != nil {
		return nil, err
	}

	approved, err := s.repoDB.GetSellerApproved(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get seller approval", "account_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !approved {
		return nil, goerror.NewBusiness("seller account is awaiting approval", goerror.CodeForbidden)
	}

	return clm, nil
}

// presignImage returns a temporary download URL for a stored image key, or
// empty when the product has no image or signing fails.
func (s *Usecase) presignImage(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	bucket := s.cfg.GetString("modules.catalog.image_bucket")
	expiry := s.cfg.GetMinute("modules.catalog.image_url_ttl_minutes")
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	url, err := s.storage.PresignGet(ctx, bucket, key, expiry)
	if err != nil {
		slog.WarnContext(ctx, "failed to presign product image", "key", key, "error", err)
		return ""
	}

	return url
}
