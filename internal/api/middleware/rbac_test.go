package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newRBACContext(roles []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set("roles", roles)
	}
	return c
}

func TestRequireRoles_Allowed(t *testing.T) {
	c := newRBACContext([]string{"admin"})

	called := false
	handler := RequireRoles("admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRoles_Intersection(t *testing.T) {
	// A user holding several roles passes as long as one is allowed.
	c := newRBACContext([]string{"user", "admin"})

	handler := RequireRoles("admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	c := newRBACContext([]string{"user"})

	handler := RequireRoles("admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != "Access denied" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireRoles_NoRolesInContext(t *testing.T) {
	c := newRBACContext(nil)

	handler := RequireRoles("admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
