package inbound

import (
	"context"

	"github.com/pasarhub/pasar/internal/catalog/usecase"
	"github.com/pasarhub/pasar/internal/pkg/router"
)

type uc interface {
	ProductList(ctx context.Context, in usecase.ProductListInput) (*usecase.ProductListOutput, error)
	ProductDetail(ctx context.Context, in usecase.ProductDetailInput) (*usecase.ProductView, error)

	MyProducts(ctx context.Context) (*usecase.MyProductsOutput, error)
	ProductCreate(ctx context.Context, in usecase.ProductCreateInput) (*usecase.ProductCreateOutput, error)
	ProductUpdate(ctx context.Context, in usecase.ProductUpdateInput) error
	ProductDelete(ctx context.Context, in usecase.ProductDeleteInput) error
	ProductImageUpload(ctx context.Context, in usecase.ProductImageUploadInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Public catalog
	r.GET("/api/v1/products", end.ProductList)
	r.GET("/api/v1/products/:id", end.ProductDetail)

	// Seller management
	r.GET("/api/v1/seller/products", end.MyProducts)
	r.POST("/api/v1/products", end.ProductCreate)
	r.PUT("/api/v1/products/:id", end.ProductUpdate)
	r.DELETE("/api/v1/products/:id", end.ProductDelete)
	r.PUT("/api/v1/products/:id/image", end.ProductImageUpload)
}
