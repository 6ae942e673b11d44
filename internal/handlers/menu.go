package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bistroboss/bistro-server/internal/events"
	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/bistroboss/bistro-server/internal/search"
)

type MenuHandler struct {
	DB       *gorm.DB
	ES       *elasticsearch.Client
	Index    string
	Producer *events.Producer
}

func (h *MenuHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "menu_events", fmt.Sprint(event["id"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	var items []models.MenuItem
	if err := h.DB.Find(&items).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) SearchMenu(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return errorResponse(c, http.StatusBadRequest, fmt.Errorf("query parameter q is required"))
	}
	if h.ES == nil {
		return errorResponse(c, http.StatusServiceUnavailable, fmt.Errorf("search is not configured"))
	}

	from, _ := strconv.Atoi(c.QueryParam("from"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size <= 0 || size > 100 {
		size = 10
	}

	total, items, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var item models.MenuItem
	if err := c.Bind(&item); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if h.ES != nil {
		if err := search.IndexMenuItem(c.Request().Context(), h.ES, h.Index, item); err != nil {
			c.Logger().Errorf("menu index error: %v", err)
		}
	}
	h.publish(c, map[string]any{
		"type": "menu_item_created",
		"id":   item.ID,
		"name": item.Name,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res := h.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return errorResponse(c, http.StatusInternalServerError, res.Error)
	}

	if h.ES != nil {
		if err := search.DeleteMenuItem(c.Request().Context(), h.ES, h.Index, id); err != nil {
			c.Logger().Errorf("menu index error: %v", err)
		}
	}
	h.publish(c, map[string]any{
		"type": "menu_item_deleted",
		"id":   id,
	})

	return c.JSON(http.StatusOK, DeleteResult{DeletedCount: res.RowsAffected})
}
