package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Only the first violated rule is reported; field declaration order on the
// request structs is the rule precedence order.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return errors.New(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldMessages carries the exact client-facing message for each request
// field. Create and update deliberately word the name rule differently.
var fieldMessages = map[string]string{
	"registerRequest.Name":     "Name is required and must not exceed 8 characters",
	"registerRequest.Email":    "Please include a valid email",
	"registerRequest.Password": "Password must be at least 6 characters",
	"loginRequest.Email":       "Please include a valid email",
	"loginRequest.Password":    "Password is required",

	"createProductRequest.Name":     "Name is required",
	"createProductRequest.Price":    "Price must be a non-negative number",
	"createProductRequest.Category": "Invalid category",
	"createProductRequest.Quantity": "Quantity must be a non-negative integer",

	"updateProductRequest.Name":     "Name cannot be empty",
	"updateProductRequest.Price":    "Price must be a non-negative number",
	"updateProductRequest.Category": "Invalid category",
	"updateProductRequest.Quantity": "Quantity must be a non-negative integer",
}

// fieldError converts a single ValidationError into the client-facing message.
func fieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}

	// Fallback for rules without a bespoke message.
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
