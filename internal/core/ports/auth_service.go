package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// RegisterInput carries the (already syntax-validated) registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult pairs a user summary with a freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
