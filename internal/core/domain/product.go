package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id")

// CategoryOther is assigned when a product is created without a category.
const CategoryOther = "Other"

// Categories is the closed set of product categories accepted by the API.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Food",
	"Books",
	CategoryOther,
}

// IsValidCategory reports whether c belongs to the category set.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Product is the core catalog record. Price and Quantity are never negative;
// the validation pipeline rejects mutations that would violate that.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}
