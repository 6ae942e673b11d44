package handlers

import (
	"net/http"
	"strconv"

	"github.com/bistroboss/bistro-server/internal/middleware/auth"
	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CartHandler struct {
	DB *gorm.DB
}

// GetCart returns the cart of the email given in the query parameter. A
// missing parameter yields an empty list; asking for someone else's cart
// is forbidden.
func (h *CartHandler) GetCart(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []models.CartItem{})
	}

	if auth.EmailFromContext(c) != email {
		return c.JSON(http.StatusForbidden, auth.ErrorMessage{Error: true, Message: "forbidden access"})
	}

	var items []models.CartItem
	if err := h.DB.Where("email = ?", email).Find(&items).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var item models.CartItem
	if err := c.Bind(&item); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) DeleteFromCart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res := h.DB.Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return errorResponse(c, http.StatusInternalServerError, res.Error)
	}
	return c.JSON(http.StatusOK, DeleteResult{DeletedCount: res.RowsAffected})
}
