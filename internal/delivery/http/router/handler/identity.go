package handler

import (
	"strings"

	"pulse/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the caller's external identity, attached by the
// authenticating gateway in front of this service.
const userIDHeader = "X-User-Id"

// requireUserID extracts the caller identity or writes a 401.
func requireUserID(c echo.Context) (string, error) {
	userID := strings.TrimSpace(c.Request().Header.Get(userIDHeader))
	if userID == "" {
		return "", response.Unauthorized(c, "MISSING_USER_ID", "Missing user identity header")
	}

	return userID, nil
}
