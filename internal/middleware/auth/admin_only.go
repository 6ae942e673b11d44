package auth

import (
	"net/http"

	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/labstack/echo/v4"
)

// AdminOnly requires RequireJWT to have run first. The role is re-read from
// the user store on every gated request, so a role change takes effect on
// the very next call.
func (g *Guard) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := EmailFromContext(c)

		var user models.User
		if err := g.DB.Where("email = ?", email).First(&user).Error; err != nil || user.Role != "admin" {
			return c.JSON(http.StatusForbidden, ErrorMessage{Error: true, Message: "forbidden access"})
		}
		return next(c)
	}
}
