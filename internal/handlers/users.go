package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bistroboss/bistro-server/internal/middleware/auth"
	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser is an insert-if-absent keyed by email, so the client can post
// the profile on every sign-in without creating duplicates.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var existing models.User
	err := h.DB.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "User already exists!"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if err := h.DB.Create(&user).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, user)
}

// IsAdmin lets a signed-in caller check their own role. Asking about anyone
// else is rejected outright.
func (h *UserHandler) IsAdmin(c echo.Context) error {
	email := c.Param("email")

	if auth.EmailFromContext(c) != email {
		return c.JSON(http.StatusForbidden, auth.ErrorMessage{Error: true, Message: "Forbidden Access"})
	}

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.JSON(http.StatusOK, echo.Map{"admin": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": user.Role == "admin"})
}

// PromoteAdmin grants the admin role by user id. The route carries no auth,
// matching the contract this API has always exposed; see DESIGN.md.
func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res := h.DB.Model(&models.User{}).Where("id = ?", id).Update("role", "admin")
	if res.Error != nil {
		return errorResponse(c, http.StatusInternalServerError, res.Error)
	}
	return c.JSON(http.StatusOK, UpdateResult{ModifiedCount: res.RowsAffected})
}
