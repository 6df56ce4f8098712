package entity

import "time"

type Product struct {
	ID          int64
	SellerID    int64
	Title       string
	Description string
	Price       int64 // cents
	Stock       int32
	Category    string
	ImageKey    string
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductListing is a product row joined with its seller for public views.
type ProductListing struct {
	Product
	SellerEmail string
}

type NewProduct struct {
	ID          int64
	SellerID    int64
	Title       string
	Description string
	Price       int64
	Stock       int32
	Category    string
	Status      ProductStatus
}

type ProductPatch struct {
	ID          int64
	SellerID    int64
	Title       string
	Description string
	Price       int64
	Stock       int32
	Category    string
	Status      ProductStatus
}

type ProductListFilterData struct {
	IsFilterBySearch   bool
	IsFilterByCategory bool
	Search             string
	Category           string
	Size               int32
	Page               int32
}
