package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-server/internal/handlers"
	"github.com/bistroboss/bistro-server/internal/middleware/auth"
)

type Deps struct {
	Guard          *auth.Guard
	AuthHandler    *handlers.AuthHandler
	MenuHandler    *handlers.MenuHandler
	UserHandler    *handlers.UserHandler
	ReviewHandler  *handlers.ReviewHandler
	CartHandler    *handlers.CartHandler
	PaymentHandler *handlers.PaymentHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Bistro server is running") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/jwt", d.AuthHandler.IssueToken)

	e.GET("/menu", d.MenuHandler.GetMenu)
	e.GET("/menu/search", d.MenuHandler.SearchMenu)
	e.POST("/menu", d.MenuHandler.CreateMenuItem, d.Guard.RequireJWT, d.Guard.AdminOnly)
	e.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem, d.Guard.RequireJWT, d.Guard.AdminOnly)

	e.GET("/users", d.UserHandler.GetUsers)
	e.POST("/users", d.UserHandler.CreateUser)
	e.GET("/users/admin/:email", d.UserHandler.IsAdmin, d.Guard.RequireJWT)
	e.PATCH("/users/admin/:id", d.UserHandler.PromoteAdmin)

	e.GET("/reviews", d.ReviewHandler.GetReviews)

	e.GET("/carts", d.CartHandler.GetCart, d.Guard.RequireJWT)
	e.POST("/carts", d.CartHandler.AddToCart)
	e.DELETE("/carts/:id", d.CartHandler.DeleteFromCart)

	e.POST("/create-payment-intent", d.PaymentHandler.CreateIntent, d.Guard.RequireJWT)
	e.POST("/payments", d.PaymentHandler.RecordPayment, d.Guard.RequireJWT)
	e.GET("/admin-stats", d.PaymentHandler.AdminStats, d.Guard.RequireJWT, d.Guard.AdminOnly)
}
