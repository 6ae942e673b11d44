package auth

import (
	"net/http"
	"strings"

	"github.com/bistroboss/bistro-server/internal/token"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Guard holds everything the auth chain needs: the token service for the
// cheap signature check and the DB for the per-request role lookup.
type Guard struct {
	DB     *gorm.DB
	Tokens *token.Service
}

// RequireJWT extracts the bearer credential from the Authorization header,
// verifies it and puts the decoded claims into the echo context. The verify
// failure reason is not distinguished to the caller.
func (g *Guard) RequireJWT(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, ErrorMessage{Error: true, Message: "unauthorized access"})
		}

		// a header without a space yields an empty credential, which
		// Verify rejects as invalid
		raw := ""
		if parts := strings.Fields(header); len(parts) > 1 {
			raw = parts[1]
		}

		claims, err := g.Tokens.Verify(raw)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorMessage{Error: true, Message: "unauthorized access"})
		}

		setUserContext(c, claims)
		return next(c)
	}
}
