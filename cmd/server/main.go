package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "rentalhq-backend/internal/api/http"
	"rentalhq-backend/internal/config"
	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository/jsonfile"
	"rentalhq-backend/internal/security"
	"rentalhq-backend/internal/service"
	"rentalhq-backend/internal/storage"
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
	logger.Info("Starting RentalHQ Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "path", cfg.Store.Path, "seed", cfg.Store.Seed)

	// Initialize the JSON data store
	snap := storage.NewSnapshot(cfg.Store.Path)
	if cfg.Store.Seed && !snap.Exists() {
		logger.Info("Seeding demo catalog", "path", cfg.Store.Path)
		if err := snap.Save(storage.SeedDocument(time.Now())); err != nil {
			logger.Error("Failed to seed data store", "error", err)
			log.Fatalf("Failed to seed data store: %v", err)
		}
	}
	store := jsonfile.NewStore(snap)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.ExpiryMinutes)*time.Minute,
	)

	// Initialize Services
	catalogSvc := service.NewCatalogService(store.GeneratorRepository)
	cartSvc := service.NewCartService(store.GeneratorRepository)
	otpProvider := service.NewSimulatedOTPProvider(time.Duration(cfg.OTP.TTLMinutes) * time.Minute)
	checkoutSvc := service.NewCheckoutService(
		cartSvc,
		store.BookingRepository,
		store.GeneratorRepository,
		store.CustomerRepository,
		otpProvider,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.GeneratorRepository,
		store.CustomerRepository,
	)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository)
	reviewSvc := service.NewReviewService(store.ReviewRepository)
	inquirySvc := service.NewInquiryService(store.InquiryRepository, store.GeneratorRepository)
	authSvc := service.NewAuthService(cfg.Admin.Email, cfg.Admin.PasswordHash, tokenManager)
	recommendSvc := service.NewRecommendationService(
		store.GeneratorRepository,
		cfg.AI.BaseURL,
		cfg.AI.Model,
		cfg.AI.APIKey,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Data:      store,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Checkout:  checkoutSvc,
		Booking:   bookingSvc,
		Customer:  customerSvc,
		Payment:   paymentSvc,
		Review:    reviewSvc,
		Inquiry:   inquirySvc,
		Auth:      authSvc,
		Recommend: recommendSvc,
		Tokens:    tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
