package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/lib/pq"

	"rentease-backend/internal/config"
	"rentease-backend/internal/jobs"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/messaging"
	"rentease-backend/internal/metrics"
	"rentease-backend/internal/repository/postgres"
	"rentease-backend/internal/scheduler"
	"rentease-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ("+strings.Join(jobs.JobNames, ", ")+")")
	seedAdmin := flag.Bool("seed-admin", false, "Create the configured admin account if none exists and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.EnableStackTraces(cfg.Debug.StackTraces)
	logger.Info("Starting RentEase Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	if *seedAdmin {
		authSvc := service.NewAuthService(store.UserRepository, store.WorkerRepository, nil)
		admin, created, err := authSvc.EnsureAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			logger.Error("Failed to seed admin account", "error", err)
			log.Fatalf("Failed to seed admin account: %v", err)
		}
		if created {
			logger.Info("Admin account created", "userID", admin.ID, "email", admin.Email)
		} else {
			logger.Info("Admin account already exists, nothing to seed")
		}
		return
	}

	var publisher service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			logger.Error("Failed to connect to RabbitMQ", "error", err)
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer broker.Close()
		publisher = broker
	}

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		config.NewCircuitBreaker("SendGrid"),
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository, store.UserRepository, store.BookingRepository, emailSvc, publisher)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.WorkerPaymentRepository,
		store.WorkerBookingRepository,
		noteSvc,
	)

	jobServices := &jobs.Services{
		Payment:      paymentSvc,
		Notification: noteSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg, metrics.New())

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if !jobRunner.Run(*runOnce) {
			logger.Error("Unknown job name", "job", *runOnce)
			fmt.Printf("Available jobs:\n")
			for _, name := range jobs.JobNames {
				fmt.Printf("  - %s\n", name)
			}
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}
