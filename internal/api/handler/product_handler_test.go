package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id, actorID string) (*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	return s.listFn(ctx, in)
}

func (s *stubProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id, actorID string) (*domain.Product, error) {
	return s.deleteFn(ctx, id, actorID)
}

func newProductTestContext(t *testing.T, method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin_1")
	return e, c, rec
}

func sampleProduct() *domain.Product {
	return &domain.Product{
		ID:          "prod_1",
		Name:        "widget",
		Price:       9.99,
		Category:    "Electronics",
		Quantity:    3,
		Description: "a widget",
	}
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Page != 2 || in.Limit != 5 {
				t.Fatalf("unexpected pagination input: %+v", in)
			}
			return &ports.ProductPage{
				Products:    []*domain.Product{sampleProduct()},
				TotalPages:  3,
				CurrentPage: 2,
				TotalItems:  12,
				Limit:       5,
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodGet, "/products?page=2&limit=5", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Products    []map[string]any `json:"products"`
			TotalPages  int              `json:"totalPages"`
			CurrentPage int              `json:"currentPage"`
			TotalItems  int64            `json:"totalItems"`
			Limit       int              `json:"limit"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Products) != 1 || resp.Data.Products[0]["name"] != "widget" {
		t.Fatalf("unexpected products: %+v", resp.Data.Products)
	}
	if resp.Data.TotalPages != 3 || resp.Data.CurrentPage != 2 || resp.Data.TotalItems != 12 || resp.Data.Limit != 5 {
		t.Fatalf("unexpected pagination metadata: %+v", resp.Data)
	}
}

func TestProductHandler_List_IgnoresBadQueryParams(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
			if in.Page != 0 || in.Limit != 0 {
				t.Fatalf("expected zero values for unparseable params, got %+v", in)
			}
			return &ports.ProductPage{CurrentPage: 1, Limit: 10}, nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodGet, "/products?page=abc&limit=xyz", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get(t *testing.T) {
	stub := &stubProductService{
		getFn: func(_ context.Context, id string) (*domain.Product, error) {
			if id != "prod_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodGet, "/products/prod_1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Product map[string]any `json:"product"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Product["id"] != "prod_1" || resp.Data.Product["name"] != "widget" {
		t.Fatalf("unexpected product payload: %+v", resp.Data.Product)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(_ context.Context, _ string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	_, c, _ := newProductTestContext(t, http.MethodGet, "/products/prod_missing", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_missing")

	// Domain errors pass through untouched; the central error handler maps
	// them to status codes.
	if err := handler.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Name != "widget" || in.Price != 9.99 || in.Quantity != 3 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.ActorID != "admin_1" {
				t.Fatalf("expected actor from context, got %q", in.ActorID)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	body := `{"name":"widget","price":9.99,"category":"Electronics","quantity":3,"description":"a widget"}`
	_, c, rec := newProductTestContext(t, http.MethodPost, "/products", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_PriceZeroIsValid(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Price != 0 {
				t.Fatalf("expected price 0, got %v", in.Price)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodPost, "/products", `{"name":"freebie","price":0}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, _ ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"price":1}`, "Name is required"},
		{"missing price", `{"name":"widget"}`, "Price must be a non-negative number"},
		{"negative price", `{"name":"widget","price":-1}`, "Price must be a non-negative number"},
		{"bad category", `{"name":"widget","price":1,"category":"Bogus"}`, "Invalid category"},
		{"negative quantity", `{"name":"widget","price":1,"quantity":-1}`, "Quantity must be a non-negative integer"},
		{"description not a string", `{"name":"widget","price":1,"description":42}`, "Description must be a string"},
		{"precedence", `{"price":-1,"category":"Bogus"}`, "Name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c, rec := newProductTestContext(t, http.MethodPost, "/products", tc.body)
			if err := handler.Create(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := errorMessage(t, rec); got != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProductHandler_Update_PartialPatch(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
			if id != "prod_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Patch.Price == nil || *in.Patch.Price != 14.99 {
				t.Fatalf("expected price patch, got %+v", in.Patch)
			}
			if in.Patch.Name != nil || in.Patch.Category != nil || in.Patch.Quantity != nil || in.Patch.Description != nil {
				t.Fatalf("absent fields must stay nil: %+v", in.Patch)
			}
			p := sampleProduct()
			p.Price = 14.99
			return p, nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodPut, "/products/prod_1", `{"price":14.99}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Validation(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProductInput) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty name", `{"name":""}`, "Name cannot be empty"},
		{"negative price", `{"price":-5}`, "Price must be a non-negative number"},
		{"bad category", `{"category":"Toys"}`, "Invalid category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c, rec := newProductTestContext(t, http.MethodPut, "/products/prod_1", tc.body)
			c.SetParamNames("id")
			c.SetParamValues("prod_1")
			if err := handler.Update(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := errorMessage(t, rec); got != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id, actorID string) (*domain.Product, error) {
			if id != "prod_1" || actorID != "admin_1" {
				t.Fatalf("unexpected args: %s %s", id, actorID)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	_, c, rec := newProductTestContext(t, http.MethodDelete, "/products/prod_1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			DeletedProduct map[string]any `json:"deletedProduct"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Product successfully removed" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Data.DeletedProduct["id"] != "prod_1" {
		t.Fatalf("unexpected deleted product: %+v", resp.Data.DeletedProduct)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, _, _ string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	_, c, _ := newProductTestContext(t, http.MethodDelete, "/products/prod_missing", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_missing")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
