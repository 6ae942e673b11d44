package handlers

import (
	"net/http"

	"github.com/bistroboss/bistro-server/internal/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Tokens *token.Service
}

// IssueToken signs whatever profile the client posts (email at minimum)
// into a 1 hour session token. Identity is established by the upstream
// sign-in flow, this endpoint only mints the session credential.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims := jwt.MapClaims{}
	if err := c.Bind(&claims); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	signed, err := h.Tokens.Issue(claims)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": signed})
}
