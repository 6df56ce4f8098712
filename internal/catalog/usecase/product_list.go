package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
)

type ProductListInput struct {
	Search   string // value already trimmed
	Category string
	Size     int32
	Page     int32
}

type ProductView struct {
	ID          int64
	SellerID    int64
	SellerEmail string
	Title       string
	Description string
	Price       int64
	Stock       int32
	Category    string
	ImageURL    string
	CreatedAt   time.Time
}

type ProductListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Products []ProductView
}

// ProductList returns the public catalog: active products only, with the
// seller attached.
func (s *Usecase) ProductList(ctx context.Context, in ProductListInput) (*ProductListOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20 // default limit
	}
	filterData := entity.ProductListFilterData{
		Search:   in.Search,
		Category: in.Category,
		Size:     in.Size,
		Page:     (max(in.Page, 1) - 1) * in.Size,
	}
	if in.Search != "" {
		filterData.IsFilterBySearch = true
	}
	if in.Category != "" {
		filterData.IsFilterByCategory = true
	}

	listings, count, err := s.repoDB.GetPublicProducts(ctx, filterData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list public products", "error", err)
		return nil, goerror.NewServer(err)
	}

	products := make([]ProductView, 0, len(listings))
	for _, l := range listings {
		products = append(products, s.toView(ctx, l))
	}

	return &ProductListOutput{
		Page:     max(in.Page, 1),
		Size:     in.Size,
		Total:    count,
		Products: products,
	}, nil
}

type ProductDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ProductDetail(ctx context.Context, in ProductDetailInput) (*ProductView, error) {
	ctx, span := s.startSpan(ctx, "ProductDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	listing, err := s.repoDB.GetPublicProductByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get public product", "product_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	view := s.toView(ctx, *listing)
	return &view, nil
}

func (s *Usecase) toView(ctx context.Context, l entity.ProductListing) ProductView {
	return ProductView{
		ID:          l.ID,
		SellerID:    l.SellerID,
		SellerEmail: l.SellerEmail,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Stock:       l.Stock,
		Category:    l.Category,
		ImageURL:    s.presignImage(ctx, l.ImageKey),
		CreatedAt:   l.CreatedAt,
	}
}
