package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/config"
	"github.com/khabaroff/flabef-storefront/src/database"
	"github.com/khabaroff/flabef-storefront/src/handlers"
	"github.com/khabaroff/flabef-storefront/src/logging"
	"github.com/khabaroff/flabef-storefront/src/metrics"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/khabaroff/flabef-storefront/src/repositories/memory"
	"github.com/khabaroff/flabef-storefront/src/repositories/postgres"
	"github.com/khabaroff/flabef-storefront/src/server"
	"github.com/khabaroff/flabef-storefront/src/services"
	"github.com/khabaroff/flabef-storefront/src/templates"
	"github.com/rs/zerolog/log"
)

// Bootstrap account used outside production when ADMIN_* is not set
const (
	devAdminEmail          = "admin@flabef.com"
	devAdminPassword       = "admin123"
	devAdminDocumentNumber = "12345678"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Environment: cfg.Environment,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("storage", cfg.StorageDriver).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	healthChecks := make(map[string]handlers.HealthCheck)

	// Initialize storage
	var repos repositories.Set
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = memory.NewSet()
		log.Warn().Msg("using in-memory storage, data is lost on restart")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := database.New(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer db.Close()

		repos = postgres.NewSet(db.GetPool())
		healthChecks["database"] = db.Health
		log.Info().Msg("database connected")
	}

	// Initialize session store
	var sessionStore services.SessionStore
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		redisStore, err := services.NewRedisSessionStore(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()

		sessionStore = redisStore
		healthChecks["redis"] = redisStore.Ping
		log.Info().Msg("redis session store connected")
	} else {
		sessionStore = services.NewMemorySessionStore()
		log.Info().Msg("using in-memory session store")
	}
	sessionService := services.NewSessionService(sessionStore, repos.Admins, cfg.SessionSecret, cfg.SessionTTL)

	// Initialize encryption (optional, empty key disables)
	encryptor, err := services.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryption")
	}
	if encryptor != nil {
		log.Info().Msg("contact request encryption enabled (AES-256-GCM)")
	} else {
		log.Info().Msg("contact request encryption disabled (ENCRYPTION_KEY not set)")
	}

	// Initialize delivery channels
	var smsSender services.SMSSender
	smsConfig := services.SMSConfig{
		GatewayURL: cfg.SMSGatewayURL,
		APIKey:     cfg.SMSAPIKey,
		Sender:     cfg.SMSSender,
	}
	if emailConfig, err := templates.LoadEmailConfig(); err == nil {
		smsConfig.Body = emailConfig.SMS.RecoveryCode
	}
	if sms := services.NewSMSService(smsConfig); sms != nil {
		smsSender = sms
		log.Info().Str("gateway", cfg.SMSGatewayURL).Msg("SMS gateway initialized")
	} else {
		log.Warn().Msg("SMS gateway not configured - SMS recovery codes will not be delivered")
	}

	var emailSender services.EmailSender
	if email := services.NewEmailService(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunFromEmail, cfg.MailgunFromName); email != nil {
		emailSender = email
		log.Info().Str("domain", cfg.MailgunDomain).Msg("Mailgun email service initialized")
	} else {
		log.Warn().Msg("Mailgun credentials not configured - email recovery codes will not be delivered")
	}

	// Initialize Analytics Service
	analyticsService, err := services.NewAnalyticsService(services.AnalyticsConfig{
		PostHogAPIKey: cfg.PostHogAPIKey,
		PostHogHost:   cfg.PostHogHost,
		Enabled:       cfg.PostHogEnabled,
		Environment:   cfg.Environment,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analytics service")
	}
	defer analyticsService.Close()

	if cfg.PostHogEnabled {
		log.Info().Str("host", cfg.PostHogHost).Msg("PostHog analytics enabled")
	} else {
		log.Info().Msg("PostHog analytics disabled")
	}

	m := metrics.New()

	// Initialize services
	adminService := services.NewAdminService(repos.Admins)
	seedAdmin(adminService, cfg)

	recoveryService := services.NewRecoveryService(
		services.NewVerifier(repos.Admins),
		adminService,
		repos.Tokens,
		smsSender,
		emailSender,
		analyticsService,
		m,
		services.RecoveryConfig{
			CodeTTL:    cfg.ResetCodeTTL,
			ExposeCode: !cfg.IsProduction(),
		},
	)
	if !cfg.IsProduction() {
		log.Warn().Msg("recovery codes are returned in API responses (non-production)")
	}

	catalogService := services.NewCatalogService(repos.Products, repos.ITServices, repos.FoodItems)
	cartService := services.NewCartService(repos.Cart)
	contactService := services.NewContactService(repos.Contacts, encryptor)
	contentService := services.NewContentService(repos.Categories, repos.Settings, repos.Footers)
	seedContent(contentService)
	cleanupService := services.NewCleanupService(repos.Tokens, sessionStore, cfg.EnableAutoCleanup)

	// Start background services
	cleanupService.Start(context.Background())

	router := server.NewRouter(server.Deps{
		Admins:         adminService,
		Sessions:       sessionService,
		Recovery:       recoveryService,
		Catalog:        catalogService,
		Cart:           cartService,
		Contacts:       contactService,
		Content:        contentService,
		Analytics:      analyticsService,
		Metrics:        m,
		HealthChecks:   healthChecks,
		StorageDriver:  cfg.StorageDriver,
		AllowedOrigins: cfg.AllowedOrigins,
		CartScope:      cfg.CartScope,
		SecureCookies:  cfg.IsProduction(),
	})

	// Create HTTP server with timeouts (G112: protect from Slowloris attack)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Stop cleanup service
	cleanupService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

// seedAdmin creates the first super admin when the store has no accounts
func seedAdmin(admins *services.AdminService, cfg *config.Config) {
	in := services.CreateAdminInput{
		Email:          cfg.AdminEmail,
		Password:       cfg.AdminPassword,
		Role:           models.RoleSuperAdmin,
		FullName:       "Super Admin",
		DocumentType:   "DNI",
		DocumentNumber: cfg.AdminDocumentNumber,
	}
	if in.Email == "" || in.Password == "" {
		if cfg.IsProduction() {
			log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set - no super admin bootstrapped")
			return
		}
		in.Email, in.Password, in.DocumentNumber = devAdminEmail, devAdminPassword, devAdminDocumentNumber
	}

	created, err := admins.EnsureSuperAdmin(context.Background(), in)
	if err != nil {
		log.Error().Err(err).Msg("failed to create initial super admin")
		return
	}
	if created {
		log.Info().Str("email", in.Email).Msg("initial super admin created")
	}
}

// seedContent writes the default categories, settings and footers into empty stores
func seedContent(content *services.ContentService) {
	defaults, err := templates.LoadStorefrontDefaults()
	if err != nil {
		log.Error().Err(err).Msg("failed to load storefront defaults")
		return
	}
	if err := content.SeedDefaults(context.Background(), defaults); err != nil {
		log.Error().Err(err).Msg("failed to seed storefront content")
	}
}
