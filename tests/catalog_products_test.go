package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"
)

type productPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int32  `json:"stock"`
	Category    string `json:"category"`
}

func createProduct(t *testing.T, token string) int64 {
	t.Helper()

	payload := productPayload{
		Title:       fmt.Sprintf("Real Test Product %d", time.Now().UnixNano()),
		Description: "created by the real test suite",
		Price:       150000,
		Stock:       10,
		Category:    "electronics",
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/products", payload, token)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("create product failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		ProductID string `json:"product_id"`
	}
	decodeSuccess(t, body, &data)

	id, err := strconv.ParseInt(data.ProductID, 10, 64)
	if err != nil {
		t.Fatalf("parse product id: %v", err)
	}

	return id
}

func TestProductListPublic(t *testing.T) {

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/products", nil, "")

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("product list failed: status=%d message=%q", status, errEnv.Message)
	}
}

func TestProductDetailNotFound(t *testing.T) {

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/products/1", nil, "")

	// Assert
	if status != http.StatusNotFound && status != http.StatusOK {
		t.Fatalf("unexpected status=%d", status)
	}
}

func TestProductCreateRequiresToken(t *testing.T) {

	// Arrange
	payload := productPayload{Title: "No Auth", Price: 1000, Category: "misc"}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/products", payload, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got status=%d", status)
	}
}

func TestProductLifecycle(t *testing.T) {

	// Arrange
	token := sellerToken(t)
	id := createProduct(t, token)
	idStr := strconv.FormatInt(id, 10)

	// the product must be publicly visible
	status, body := doJSON(t, http.MethodGet, "/api/v1/products/"+idStr, nil, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("product detail failed: status=%d message=%q", status, errEnv.Message)
	}

	// update
	update := map[string]any{
		"title":       "Updated Real Test Product",
		"description": "updated by the real test suite",
		"price":       175000,
		"stock":       5,
		"category":    "electronics",
		"status":      "inactive",
	}
	status, body = doJSON(t, http.MethodPut, "/api/v1/products/"+idStr, update, token)
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("product update failed: status=%d message=%q", status, errEnv.Message)
	}

	// an inactive product drops out of the public catalog
	status, _ = doJSON(t, http.MethodGet, "/api/v1/products/"+idStr, nil, "")
	if status != http.StatusNotFound {
		t.Fatalf("expected not found for inactive product, got status=%d", status)
	}

	// but stays visible to its owner
	status, body = doJSON(t, http.MethodGet, "/api/v1/seller/products", nil, token)
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("seller products failed: status=%d message=%q", status, errEnv.Message)
	}
	var data struct {
		Products []struct {
			ProductID string `json:"product_id"`
		} `json:"products"`
	}
	decodeSuccess(t, body, &data)
	found := false
	for _, p := range data.Products {
		if p.ProductID == idStr {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected product %s in seller list: %s", idStr, mustJSON(data))
	}

	// delete
	status, body = doJSON(t, http.MethodDelete, "/api/v1/products/"+idStr, nil, token)
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("product delete failed: status=%d message=%q", status, errEnv.Message)
	}
}

func TestProductImageUpload(t *testing.T) {

	// Arrange
	token := sellerToken(t)
	id := createProduct(t, token)
	idStr := strconv.FormatInt(id, 10)

	// minimal valid PNG header so content-type detection accepts it
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

	// Act
	status, body := doMultipart(t, "/api/v1/products/"+idStr+"/image", "image", "product.png", png, token)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("image upload failed: status=%d message=%q", status, errEnv.Message)
	}
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
