package handlers

import (
	"net/http"

	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	var reviews []models.Review
	if err := h.DB.Find(&reviews).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
