package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - user_id must be non-empty (presence proves the middleware ran).
//   - role must be one of the known roles; an unknown role means the token
//     was minted by an incompatible issuer — reject with 401.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roleStr, _ := c.Get("role").(string)
	role = domain.Role(roleStr)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return userID, role, nil
}
