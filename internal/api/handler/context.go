package handler

import (
	"github.com/labstack/echo/v4"
)

// ctxActorID extracts the authenticated user id injected by the Auth
// middleware. Product routes are always behind that middleware, so an empty
// id only occurs in misconfigured routing; the audit trail records it as-is.
func ctxActorID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
