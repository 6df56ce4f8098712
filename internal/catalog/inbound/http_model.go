package inbound

import (
	"net/http"
	"time"
)

type ProductData struct {
	ProductID   int64     `json:"product_id,string"`
	SellerID    int64     `json:"seller_id,string"`
	SellerEmail string    `json:"seller_email,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int32     `json:"stock"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductListResponse struct {
	Products []ProductData `json:"products"`

	page  int32
	size  int32
	total int64
}

func (r ProductListResponse) Meta() map[string]any {
	return map[string]any{
		"page":  r.page,
		"size":  r.size,
		"total": r.total,
	}
}

type MyProductsResponse struct {
	Products []ProductData `json:"products"`
}

type ProductCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int32  `json:"stock"`
	Category    string `json:"category"`
}

type ProductCreateResponse struct {
	ProductID int64 `json:"product_id,string"`
}

func (ProductCreateResponse) Message() string {
	return "Product created."
}

func (ProductCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type ProductUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int32  `json:"stock"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

type ProductUpdateResponse struct{}

func (ProductUpdateResponse) Message() string {
	return "Product updated."
}

type ProductDeleteResponse struct{}

func (ProductDeleteResponse) Message() string {
	return "Product deleted."
}

type ProductImageUploadResponse struct{}

func (ProductImageUploadResponse) Message() string {
	return "Product image uploaded."
}
