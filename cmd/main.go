package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	b "github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/catalog"
	"github.com/Bambyboi/skinet/internal/config"
	"github.com/Bambyboi/skinet/internal/gateway"
	h "github.com/Bambyboi/skinet/internal/httpapi"
	"github.com/Bambyboi/skinet/internal/orders"
	"github.com/Bambyboi/skinet/internal/payments"
	pg "github.com/Bambyboi/skinet/internal/postgres"
	"github.com/Bambyboi/skinet/internal/webhook"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres: catalog + orders
	cred := &pg.Credentials{
		Host:              cfg.PostgresHost,
		Port:              cfg.PostgresPort,
		User:              cfg.PostgresUser,
		Password:          cfg.PostgresPassword,
		DBName:            cfg.PostgresDB,
		MigrationsDirPath: cfg.MigrationsPath,
	}
	db, err := pg.Open(cred)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := pg.RunMigrations(db, cred); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("connected to postgres", zap.String("host", cfg.PostgresHost))

	// Redis: basket store
	ctx := context.Background()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	basketStore := b.NewRedisStore(redisClient)
	catalogRepo := catalog.NewRepository(db)
	orderRepo := orders.NewPostgresRepository(db)
	gatewayClient := gateway.NewClient(cfg.StripeSecretKey)

	var serviceOpts []payments.Option
	if cfg.WebhookMonotoneStatus {
		serviceOpts = append(serviceOpts, payments.WithMonotoneStatus())
	}
	paymentService := payments.NewService(
		basketStore,
		catalogRepo,
		orderRepo,
		gatewayClient,
		cfg.PaymentCurrency,
		logger,
		serviceOpts...,
	)

	var dispatcherOpts []webhook.DispatcherOption
	if cfg.KafkaBrokers != "" {
		publisher := webhook.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer publisher.Close()
		dispatcherOpts = append(dispatcherOpts, webhook.WithPublisher(publisher))
		logger.Info("order status publishing enabled", zap.String("brokers", cfg.KafkaBrokers))
	}
	dispatcher := webhook.NewDispatcher(cfg.StripeWebhookSecret, paymentService, logger, dispatcherOpts...)

	paymentsHandler := h.NewPaymentsHandler(paymentService, dispatcher, cfg.RequestTimeout, logger)
	basketHandler := h.NewBasketHandler(basketStore, cfg.RequestTimeout)
	deliveryHandler := h.NewDeliveryHandler(catalogRepo, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(h.MockAuthMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/basket", func(r chi.Router) {
			r.Get("/", basketHandler.GetBasket)
			r.Post("/", basketHandler.UpdateBasket)
			r.Delete("/", basketHandler.DeleteBasket)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Post("/webhook", paymentsHandler.Webhook)
			r.Post("/{basketId}", paymentsHandler.CreateOrUpdatePaymentIntent)
		})
		r.Get("/orders/deliveryMethods", deliveryHandler.ListDeliveryMethods)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("payments backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}
