package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrorMessage is the auth failure envelope the API has always spoken.
type ErrorMessage struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	c.Set("claims", claims)
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
}

// EmailFromContext returns the authenticated caller's email, or "" when the
// request never passed RequireJWT.
func EmailFromContext(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return ""
}

// ClaimsFromContext returns the decoded token claims attached by RequireJWT.
func ClaimsFromContext(c echo.Context) jwt.MapClaims {
	if claims, ok := c.Get("claims").(jwt.MapClaims); ok {
		return claims
	}
	return nil
}
