package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pasarhub/pasar/internal/catalog/usecase"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the public catalog and seller
// product management.
type HTTPEndpoint struct {
	uc uc
}

// ProductList returns the public product catalog.
// @Summary List products
// @Description Returns active products with optional search and category filters.
// @Tags Catalog
// @Produce json
// @Param search query string false "Title search"
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=ProductListResponse} "Product list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products [get]
func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	page, _ := r.GetQueryInt32("page")
	size, _ := r.GetQueryInt32("size")

	resp, err := h.uc.ProductList(r.Context(), usecase.ProductListInput{
		Search:   strings.TrimSpace(r.GetQuery("search")),
		Category: strings.TrimSpace(r.GetQuery("category")),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	return ProductListResponse{
		Products: toProductData(resp.Products),
		page:     resp.Page,
		size:     resp.Size,
		total:    resp.Total,
	}, nil
}

// ProductDetail returns one active product.
// @Summary Get product
// @Description Returns a single active product with its seller.
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=ProductData} "Product detail"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products/{id} [get]
func (h *HTTPEndpoint) ProductDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductDetail(r.Context(), usecase.ProductDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toProductDatum(*resp), nil
}

// MyProducts returns the authenticated seller's products.
// @Summary List own products
// @Description Returns every product owned by the authenticated seller, any status.
// @Tags Catalog, Seller
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=MyProductsResponse} "Product list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Seller not approved"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/seller/products [get]
func (h *HTTPEndpoint) MyProducts(r *router.Request) (any, error) {
	resp, err := h.uc.MyProducts(r.Context())
	if err != nil {
		return nil, err
	}

	return MyProductsResponse{Products: toProductData(resp.Products)}, nil
}

// ProductCreate registers a new product for the authenticated seller.
// @Summary Create product
// @Description Creates an active product owned by the authenticated seller.
// @Tags Catalog, Seller
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProductCreateRequest true "Product payload"
// @Success 201 {object} router.successResponse{data=ProductCreateResponse} "Product created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Seller not approved"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products [post]
func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductCreate(r.Context(), usecase.ProductCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		return nil, err
	}

	return ProductCreateResponse{ProductID: resp.ProductID}, nil
}

// ProductUpdate replaces the details of an owned product.
// @Summary Update product
// @Description Updates a product owned by the authenticated seller.
// @Tags Catalog, Seller
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body ProductUpdateRequest true "Product payload"
// @Success 200 {object} router.successResponse{data=ProductUpdateResponse} "Product updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Not the owner"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products/{id} [put]
func (h *HTTPEndpoint) ProductUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProductUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProductUpdate(r.Context(), usecase.ProductUpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Status:      req.Status,
	}); err != nil {
		return nil, err
	}

	return ProductUpdateResponse{}, nil
}

// ProductDelete removes an owned product.
// @Summary Delete product
// @Description Deletes a product owned by the authenticated seller.
// @Tags Catalog, Seller
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} router.successResponse{data=ProductDeleteResponse} "Product deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Not the owner"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products/{id} [delete]
func (h *HTTPEndpoint) ProductDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ProductDelete(r.Context(), usecase.ProductDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return ProductDeleteResponse{}, nil
}

// ProductImageUpload stores a product image and records its key.
// @Summary Upload product image
// @Description Uploads the image for a product owned by the authenticated seller.
// @Tags Catalog, Seller
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Product image"
// @Success 200 {object} router.successResponse{data=ProductImageUploadResponse} "Image uploaded"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Not the owner"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/products/{id}/image [put]
func (h *HTTPEndpoint) ProductImageUpload(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	if err := h.uc.ProductImageUpload(ctx, usecase.ProductImageUploadInput{
		ProductID:   id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	}); err != nil {
		return nil, err
	}

	return ProductImageUploadResponse{}, nil
}

func toProductDatum(v usecase.ProductView) ProductData {
	return ProductData{
		ProductID:   v.ID,
		SellerID:    v.SellerID,
		SellerEmail: v.SellerEmail,
		Title:       v.Title,
		Description: v.Description,
		Price:       v.Price,
		Stock:       v.Stock,
		Category:    v.Category,
		ImageURL:    v.ImageURL,
		CreatedAt:   v.CreatedAt,
	}
}

func toProductData(views []usecase.ProductView) []ProductData {
	out := make([]ProductData, 0, len(views))
	for _, v := range views {
		out = append(out, toProductDatum(v))
	}
	return out
}
