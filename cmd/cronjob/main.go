package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"onerental-backend/internal/config"
	"onerental-backend/internal/jobs"
	"onerental-backend/internal/logger"
	"onerental-backend/internal/repository/postgres"
	"onerental-backend/internal/scheduler"
	"onerental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-overdue-rentals', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OneRental Cronjob Runner...", "log_level", cfg.Log.Level)

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

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc}, cfg)

	// One-shot mode for manual runs and container init jobs
	if *runOnce != "" {
		switch *runOnce {
		case "mark-overdue-rentals":
			jobRunner.MarkOverdueRentals()
		case "send-pickup-reminders":
			jobRunner.SendPickupReminders()
		case "purge-expired-dismissals":
			jobRunner.PurgeExpiredDismissals()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			logger.Error("Unknown job name", "job", *runOnce)
			os.Exit(1)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", "signal", sig.String())

	sched.Stop()
}
