package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	httpapi "onerental-backend/internal/api/http"
	"onerental-backend/internal/config"
	"onerental-backend/internal/logger"
	"onerental-backend/internal/repository/postgres"
	"onerental-backend/internal/security"
	"onerental-backend/internal/service"
	"onerental-backend/internal/storage"

	_ "github.com/lib/pq"
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
	logger.Info("Starting OneRental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	var verifier security.IdentityVerifier
	var authSvc service.AuthService
	switch cfg.Auth.Provider {
	case "firebase":
		logger.Info("Using Firebase identity verification")
		fbVerifier, err := security.NewFirebaseVerifier(context.Background(), cfg.Auth.FirebaseCredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
		verifier = fbVerifier
	default:
		logger.Info("Using local JWT identity verification")
		verifier = security.LocalVerifier{Tokens: tokenManager}
		authSvc = service.NewAuthService(store.UserRepository, tokenManager)
	}

	// Initialize Storage Service
	var storageService storage.StorageInterface
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	insightSvc := service.NewInsightService(store.EquipmentRepository, store.BookingRepository, store.DismissalRepository)
	dashboardSvc := service.NewDashboardService(store.EquipmentRepository, store.BookingRepository, insightSvc)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.EquipmentRepository, store.UserRepository, emailSvc)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, storageService)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Verifier:     verifier,
		AuthSvc:      authSvc,
		DashboardSvc: dashboardSvc,
		BookingSvc:   bookingSvc,
		EquipmentSvc: equipmentSvc,
		InsightSvc:   insightSvc,
	})

	// Register mock storage upload/download endpoints
	if mockStorage, ok := storageService.(*storage.MockStorageService); ok {
		httpapi.RegisterMockStorageRoutes(router, mockStorage)
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
