package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bistroboss/bistro-server/internal/config"
	"github.com/bistroboss/bistro-server/internal/es"
	"github.com/bistroboss/bistro-server/internal/events"
	"github.com/bistroboss/bistro-server/internal/handlers"
	"github.com/bistroboss/bistro-server/internal/httpserver"
	"github.com/bistroboss/bistro-server/internal/logging"
	"github.com/bistroboss/bistro-server/internal/middleware/auth"
	"github.com/bistroboss/bistro-server/internal/middleware/loggingmw"
	"github.com/bistroboss/bistro-server/internal/payment"
	"github.com/bistroboss/bistro-server/internal/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{cfg.KAFKA_ADDRESS})
	}

	tokens := &token.Service{Secret: []byte(cfg.ACCESS_TOKEN_SECRET)}
	guard := &auth.Guard{DB: db, Tokens: tokens}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Guard:          guard,
		AuthHandler:    &handlers.AuthHandler{Tokens: tokens},
		MenuHandler:    &handlers.MenuHandler{DB: db, Index: "menu", Producer: producer},
		UserHandler:    &handlers.UserHandler{DB: db},
		ReviewHandler:  &handlers.ReviewHandler{DB: db},
		CartHandler:    &handlers.CartHandler{DB: db},
		PaymentHandler: &handlers.PaymentHandler{DB: db, Intents: payment.NewStripeClient(cfg.PAYMENT_SECRET_KEY), Producer: producer},
	}

	if cfg.ES_URL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, menu search disabled", "error", err)
		} else {
			deps.MenuHandler.ES = client
		}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("bistro server listening", "port", cfg.PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
