package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "rentease-backend/internal/api/http"
	"rentease-backend/internal/config"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/messaging"
	"rentease-backend/internal/metrics"
	"rentease-backend/internal/repository/postgres"
	"rentease-backend/internal/security"
	"rentease-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.EnableStackTraces(cfg.Debug.StackTraces)
	logger.Info("Starting RentEase Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Redis session registry
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("Failed to ping redis", "error", err, "address", cfg.Redis.Address)
		log.Fatalf("Failed to ping redis: %v", err)
	}
	logger.Info("Redis connection established", "address", cfg.Redis.Address)

	// Initialize Security
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	tokenManager := security.NewTokenManager(cfg.Session.Secret, sessionTTL)
	sessions := security.NewSessionManager(tokenManager, redisClient, sessionTTL)

	// Initialize notification event publishing
	var publisher service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			logger.Error("Failed to connect to RabbitMQ", "error", err)
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer broker.Close()
		publisher = broker
		logger.Info("RabbitMQ publisher ready", "queue", cfg.RabbitMQ.QueueName)
	} else {
		logger.Info("RabbitMQ disabled, notifications stay in the inbox only")
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		config.NewCircuitBreaker("SendGrid"),
	)

	// Initialize Services
	noteSvc := service.NewNotificationService(store.NotificationRepository, store.UserRepository, store.BookingRepository, emailSvc, publisher)
	authSvc := service.NewAuthService(store.UserRepository, store.WorkerRepository, sessions)
	propertySvc := service.NewPropertyService(store.PropertyRepository, noteSvc)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.PropertyRepository,
		store.UserRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		noteSvc,
	)
	workerSvc := service.NewWorkerService(store.WorkerRepository)
	workerBookingSvc := service.NewWorkerBookingService(
		store.WorkerBookingRepository,
		store.WorkerRepository,
		store.UserRepository,
		store.WorkerPaymentRepository,
		noteSvc,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.WorkerPaymentRepository,
		store.WorkerBookingRepository,
		noteSvc,
	)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.PropertyRepository, noteSvc)
	reviewSvc := service.NewReviewService(store.RatingRepository, store.PropertyRepository, store.UserRepository)
	accountSvc := service.NewAccountService(store.UserRepository, store.PropertyRepository, store.WorkerBookingRepository)
	adminSvc := service.NewAdminService(store.UserRepository, store.PropertyRepository, sessions)
	dashboardSvc := service.NewDashboardService(
		store.PropertyRepository,
		store.BookingRepository,
		store.PaymentRepository,
		store.WorkerBookingRepository,
		store.MaintenanceRepository,
		store.NotificationRepository,
	)

	// Initialize HTTP handlers
	handler := httpapi.NewHandler(httpapi.Services{
		Auth:          authSvc,
		Property:      propertySvc,
		Booking:       bookingSvc,
		Worker:        workerSvc,
		WorkerBooking: workerBookingSvc,
		Notification:  noteSvc,
		Payment:       paymentSvc,
		Maintenance:   maintenanceSvc,
		Review:        reviewSvc,
		Account:       accountSvc,
		Dashboard:     dashboardSvc,
		Admin:         adminSvc,
	}, httpapi.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    sessionTTL,
		Secure: cfg.Session.SecureCookie,
	})

	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		Sessions:       sessions,
		Metrics:        metrics.New(),
		Health:         httpapi.NewHealthHandler(store.DB(), redisClient),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
