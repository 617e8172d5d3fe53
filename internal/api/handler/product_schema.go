package handler

// Pointer fields distinguish "absent" from "zero": price 0 is a valid value
// and an absent quantity defaults server-side. Field order is the validation
// precedence order.

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Electronics Clothing Food Books Other"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

// updateProductRequest is a partial update: nil fields are left unchanged.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Electronics Clothing Food Books Other"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type productPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

type productData struct {
	Product productPayload `json:"product"`
}

type productResponse struct {
	Data productData `json:"data"`
}

type productListData struct {
	Products    []productPayload `json:"products"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	TotalItems  int64            `json:"totalItems"`
	Limit       int              `json:"limit"`
}

type productListResponse struct {
	Data productListData `json:"data"`
}

type deleteProductData struct {
	DeletedProduct productPayload `json:"deletedProduct"`
}

type deleteProductResponse struct {
	Message string            `json:"message"`
	Data    deleteProductData `json:"data"`
}
