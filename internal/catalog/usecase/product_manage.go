package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pasarhub/pasar/internal/catalog/entity"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/shared/constant"
)

type MyProductsOutput struct {
	Products []ProductView
}

func (s *Usecase) MyProducts(ctx context.Context) (*MyProductsOutput, error) {
	ctx, span := s.startSpan(ctx, "MyProducts")
	defer span.End()

	clm, err := s.approvedSeller(ctx, constant.PermCatalogProducts, constant.PermActRead)
	if err != nil {
		return nil, err
	}

	items, err := s.repoDB.GetProductsBySeller(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list seller products", "account_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	products := make([]ProductView, 0, len(items))
	for _, p := range items {
		products = append(products, s.toView(ctx, entity.ProductListing{Product: p, SellerEmail: clm.UserEmail}))
	}

	return &MyProductsOutput{Products: products}, nil
}

type ProductCreateInput struct {
	Title       string `validate:"required,min=3,max=200"`
	Description string `validate:"max=5000"`
	Price       int64  `validate:"required,gt=0"`
	Stock       int32  `validate:"gte=0"`
	Category    string `validate:"required,min=2,max=100"`
}

type ProductCreateOutput struct {
	ProductID int64
}

func (s *Usecase) ProductCreate(ctx context.Context, in ProductCreateInput) (*ProductCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.approvedSeller(ctx, constant.PermCatalogProducts, constant.PermActCreate)
	if err != nil {
		return nil, err
	}

	p := entity.NewProduct{
		ID:          s.uid.Generate(),
		SellerID:    clm.UserID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Status:      entity.ProductStatusActive,
	}

	if err := s.repoDB.CreateProduct(ctx, p); err != nil {
		slog.ErrorContext(ctx, "failed to repo create product", "account_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductCreateOutput{ProductID: p.ID}, nil
}

type ProductUpdateInput struct {
	ID          int64  `validate:"required,gt=0"`
	Title       string `validate:"required,min=3,max=200"`
	Description string `validate:"max=5000"`
	Price       int64  `validate:"required,gt=0"`
	Stock       int32  `validate:"gte=0"`
	Category    string `validate:"required,min=2,max=100"`
	Status      string `validate:"required,oneof=active inactive"`
}

func (s *Usecase) ProductUpdate(ctx context.Context, in ProductUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProductUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.approvedSeller(ctx, constant.PermCatalogProducts, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if err := s.ensureOwner(ctx, in.ID, clm.UserID); err != nil {
		return err
	}

	if err := s.repoDB.UpdateProduct(ctx, entity.ProductPatch{
		ID:          in.ID,
		SellerID:    clm.UserID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Status:      entity.ProductStatusFromString(in.Status),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update product", "product_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type ProductDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ProductDelete(ctx context.Context, in ProductDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ProductDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.approvedSeller(ctx, constant.PermCatalogProducts, constant.PermActDelete)
	if err != nil {
		return err
	}

	if err := s.ensureOwner(ctx, in.ID, clm.UserID); err != nil {
		return err
	}

	if err := s.repoDB.DeleteProduct(ctx, in.ID, clm.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete product", "product_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) ensureOwner(ctx context.Context, productID, sellerID int64) error {
	p, err := s.repoDB.GetProductByID(ctx, productID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", productID, "error", err)
		return goerror.NewServer(err)
	}

	if p.SellerID != sellerID {
		return goerror.NewBusiness("product belongs to another seller", goerror.CodeForbidden)
	}

	return nil
}
