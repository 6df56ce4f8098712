package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductList(t *testing.T) {

	// Arrange
	var filter entity.ProductListFilterData
	repo := &fakeRepoDB{
		list: func(ctx context.Context, f entity.ProductListFilterData) ([]entity.ProductListing, int64, error) {
			filter = f
			return []entity.ProductListing{listing(1), listing(2)}, 41, nil
		},
	}
	uc := newTestUsecase(t, repo)

	// Act
	out, err := uc.ProductList(context.Background(), ProductListInput{
		Search: "basket",
		Size:   20,
		Page:   3,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int32(3), out.Page)
	assert.Equal(t, int32(20), out.Size)
	assert.Equal(t, int64(41), out.Total)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "seller@example.com", out.Products[0].SellerEmail)
	assert.Equal(t, "https://cdn.test/product-images/products/9/basket.webp", out.Products[0].ImageURL)

	assert.True(t, filter.IsFilterBySearch)
	assert.False(t, filter.IsFilterByCategory)
	assert.Equal(t, "basket", filter.Search)
	assert.Equal(t, int32(40), filter.Page, "offset for page three")
}

func TestProductListDefaultsPaging(t *testing.T) {

	// Arrange
	var filter entity.ProductListFilterData
	repo := &fakeRepoDB{
		list: func(ctx context.Context, f entity.ProductListFilterData) ([]entity.ProductListing, int64, error) {
			filter = f
			return nil, 0, nil
		},
	}
	uc := newTestUsecase(t, repo)

	// Act
	out, err := uc.ProductList(context.Background(), ProductListInput{Size: -5, Page: 0})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int32(1), out.Page)
	assert.Equal(t, int32(20), out.Size)
	assert.Empty(t, out.Products)
	assert.Equal(t, int32(20), filter.Size)
	assert.Equal(t, int32(0), filter.Page)
}

func TestProductDetail(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		detail: func(ctx context.Context, id int64) (*entity.ProductListing, error) {
			l := listing(id)
			return &l, nil
		},
	}
	uc := newTestUsecase(t, repo)

	// Act
	out, err := uc.ProductDetail(context.Background(), ProductDetailInput{ID: 77})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "Handwoven Basket", out.Title)
	assert.Equal(t, "https://cdn.test/product-images/products/9/basket.webp", out.ImageURL)
}

func TestProductDetailNotFound(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		detail: func(ctx context.Context, id int64) (*entity.ProductListing, error) {
			return nil, goerror.ErrNotFound
		},
	}
	uc := newTestUsecase(t, repo)

	// Act
	_, err := uc.ProductDetail(context.Background(), ProductDetailInput{ID: 404})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusNotFound, gerr.StatusCode())
}

func TestProductCreateRequiresAuthentication(t *testing.T) {

	// Arrange
	uc := newTestUsecase(t, &fakeRepoDB{})

	// Act: no claims in the context
	_, err := uc.ProductCreate(context.Background(), ProductCreateInput{
		Title:    "Handwoven Basket",
		Price:    125000,
		Stock:    1,
		Category: "home",
	})

	// Assert
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
}
