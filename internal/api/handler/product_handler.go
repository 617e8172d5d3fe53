package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

// ProductHandler handles catalog reads and admin-only mutations. Domain
// errors (invalid id, not found) are returned as-is and resolved by the
// central HTTP error handler.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List products with pagination
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  productListResponse
// @Failure      401    {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	products := make([]productPayload, len(result.Products))
	for i, p := range result.Products {
		products[i] = toProductPayload(p)
	}

	return c.JSON(http.StatusOK, productListResponse{
		Data: productListData{
			Products:    products,
			TotalPages:  result.TotalPages,
			CurrentPage: result.CurrentPage,
			TotalItems:  result.TotalItems,
			Limit:       result.Limit,
		},
	})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Data: productData{Product: toProductPayload(product)}})
}

// Create handles POST /products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, bindMessage(err))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateProductInput{
		Name:    req.Name,
		Price:   *req.Price,
		ActorID: ctxActorID(c),
	}
	if req.Category != nil {
		in.Category = *req.Category
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productResponse{Data: productData{Product: toProductPayload(product)}})
}

// Update handles PUT /products/:id (admin only). Absent fields are left
// unchanged; the full merged record is returned.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Any subset of product fields"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, bindMessage(err))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Patch: ports.ProductPatch{
			Name:        req.Name,
			Price:       req.Price,
			Category:    req.Category,
			Quantity:    req.Quantity,
			Description: req.Description,
		},
		ActorID: ctxActorID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Data: productData{Product: toProductPayload(product)}})
}

// Delete handles DELETE /products/:id (admin only). The response carries the
// record as it existed immediately before deletion.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  deleteProductResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), ctxActorID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteProductResponse{
		Message: "Product successfully removed",
		Data:    deleteProductData{DeletedProduct: toProductPayload(deleted)},
	})
}

func toProductPayload(p *domain.Product) productPayload {
	return productPayload{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Description: p.Description,
	}
}

// bindMessage maps a JSON type mismatch on a known field to that field's
// validation message (e.g. a numeric description yields the description
// rule message), so type errors and rule violations read the same.
func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		var ute *json.UnmarshalTypeError
		if errors.As(he.Internal, &ute) {
			switch ute.Field {
			case "name":
				return "Name is required"
			case "price":
				return "Price must be a non-negative number"
			case "quantity":
				return "Quantity must be a non-negative integer"
			case "description":
				return "Description must be a string"
			}
		}
	}
	return "invalid payload"
}
