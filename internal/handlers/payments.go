package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bistroboss/bistro-server/internal/events"
	"github.com/bistroboss/bistro-server/internal/models"
	"github.com/bistroboss/bistro-server/internal/payment"
)

type PaymentHandler struct {
	DB       *gorm.DB
	Intents  payment.IntentClient
	Producer *events.Producer
}

// CreateIntent converts the posted price from decimal currency units to
// integer minor units and asks the processor for a payment intent.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	amount := int64(math.Round(req.Price * 100))
	secret, err := h.Intents.CreateIntent(c.Request().Context(), amount)
	if err != nil {
		return errorResponse(c, http.StatusBadGateway, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}

// RecordPayment settles a checkout: the payment record is inserted and the
// paid cart items are removed in one transaction, so a failed delete never
// leaves a recorded payment behind.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var p models.Payment
	if err := c.Bind(&p); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", p.ItemIDs).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":          "payment_recorded",
		"id":            p.ID,
		"email":         p.Email,
		"price":         p.Price,
		"transactionId": p.TransactionID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"insertedResult": p,
		"deletedResult":  DeleteResult{DeletedCount: deleted},
	})
}

// AdminStats reports store-wide counts and total revenue. Revenue is summed
// over a full payments scan at call time, nothing is pre-aggregated.
func (h *PaymentHandler) AdminStats(c echo.Context) error {
	var users, products, orders int64
	if err := h.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if err := h.DB.Model(&models.MenuItem{}).Count(&products).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if err := h.DB.Model(&models.Payment{}).Count(&orders).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	var payments []models.Payment
	if err := h.DB.Find(&payments).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	revenue := 0.0
	for _, p := range payments {
		revenue += p.Price
	}

	return c.JSON(http.StatusOK, echo.Map{
		"revenue":  revenue,
		"users":    users,
		"products": products,
		"orders":   orders,
	})
}

func (h *PaymentHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "payment_events", fmt.Sprint(event["id"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
