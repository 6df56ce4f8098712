package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/storage"
	"github.com/pasarhub/pasar/internal/pkg/validator"
)

var testNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

// fakeRepoDB covers the product store with overridable behavior per test.
type fakeRepoDB struct {
	list   func(ctx context.Context, filter entity.ProductListFilterData) ([]entity.ProductListing, int64, error)
	detail func(ctx context.Context, id int64) (*entity.ProductListing, error)
}

func (f *fakeRepoDB) GetPublicProducts(ctx context.Context, filter entity.ProductListFilterData) ([]entity.ProductListing, int64, error) {
	return f.list(ctx, filter)
}

func (f *fakeRepoDB) GetPublicProductByID(ctx context.Context, id int64) (*entity.ProductListing, error) {
	return f.detail(ctx, id)
}

func (f *fakeRepoDB) GetProductsBySeller(context.Context, int64) ([]entity.Product, error) {
	panic("not expected")
}

func (f *fakeRepoDB) GetProductByID(context.Context, int64) (*entity.Product, error) {
	panic("not expected")
}

func (f *fakeRepoDB) GetSellerApproved(context.Context, int64) (bool, error) {
	panic("not expected")
}

func (f *fakeRepoDB) CreateProduct(context.Context, entity.NewProduct) error {
	panic("not expected")
}

func (f *fakeRepoDB) UpdateProduct(context.Context, entity.ProductPatch) error {
	panic("not expected")
}

func (f *fakeRepoDB) UpdateProductImage(context.Context, int64, int64, string) error {
	panic("not expected")
}

func (f *fakeRepoDB) DeleteProduct(context.Context, int64, int64) error {
	panic("not expected")
}

// fakeStorage signs predictable download URLs; everything else is unused.
type fakeStorage struct {
	storage.Storage
}

func (fakeStorage) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	return "https://cdn.test/" + bucket + "/" + key, nil
}

// testConfig overrides only the keys the catalog reads.
type testConfig struct {
	config.Config
}

func (testConfig) GetString(key string) string {
	return "product-images"
}

func (testConfig) GetMinute(key string) time.Duration {
	return 15 * time.Minute
}

func newTestUsecase(t *testing.T, repo *fakeRepoDB) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Config:     testConfig{},
		Storage:    fakeStorage{},
		Instrument: instrument.NewNoop(),
	})
}

func listing(id int64) entity.ProductListing {
	return entity.ProductListing{
		Product: entity.Product{
			ID:          id,
			SellerID:    9,
			Title:       "Handwoven Basket",
			Description: "Rattan, medium size",
			Price:       125000,
			Stock:       4,
			Category:    "home",
			ImageKey:    "products/9/basket.webp",
			Status:      entity.ProductStatusActive,
			CreatedAt:   testNow,
		},
		SellerEmail: "seller@example.com",
	}
}
