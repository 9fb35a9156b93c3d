package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	_ "github.com/redmonkez12/pizza-dashboard/docs" // Swagger docs (generated)
	"github.com/redmonkez12/pizza-dashboard/internal/auth"
	"github.com/redmonkez12/pizza-dashboard/internal/config"
	"github.com/redmonkez12/pizza-dashboard/internal/customer"
	"github.com/redmonkez12/pizza-dashboard/internal/email"
	httpServer "github.com/redmonkez12/pizza-dashboard/internal/http"
	"github.com/redmonkez12/pizza-dashboard/internal/logging"
	"github.com/redmonkez12/pizza-dashboard/internal/orders"
	"github.com/redmonkez12/pizza-dashboard/internal/ratelimit"
	"github.com/redmonkez12/pizza-dashboard/internal/user"
)

// @title           Pizza Dashboard API
// @version         1.0
// @description     REST API for the pizza order management dashboard: accounts with email verification, customers, orders, activity log and delivery schedule.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize repositories
	userRepo := user.NewRepository()
	customerRepo := customer.NewRepository()
	dashboardStore := orders.NewStore()

	// Initialize rate limiter
	rateLimiter := ratelimit.NewLimiter(cfg.RateLimit.MaxLoginAttempts, cfg.RateLimit.LockoutWindow)

	// Initialize PASETO service
	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	// Initialize email service; without an SMTP host, account links go to
	// the log instead
	var emailSender auth.EmailSender
	if cfg.Email.SMTPHost != "" {
		emailSender = email.NewService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FrontendURL,
		)
	} else {
		logger.Info("no SMTP host configured, logging account links instead")
		emailSender = email.NewLogService(cfg.Email.FrontendURL, logger)
	}

	// Initialize auth service
	authService := auth.NewService(
		userRepo,
		rateLimiter,
		pasetoService,
		emailSender,
		logger,
		cfg.Auth.AccessTokenDuration,
	)

	// Seed demo data
	if err := seedDemoUser(userRepo); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	if err := customer.SeedDemo(customerRepo); err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	orders.SeedDemo(dashboardStore)

	// Initialize HTTP handlers
	authHandler := auth.NewHandler(
		authService,
		userRepo,
		logger,
		!cfg.Server.IsDevelopment(), // isProduction
		cfg.Auth.AccessTokenDuration,
	)
	authMiddleware := auth.NewMiddleware(pasetoService)
	customerHandler := customer.NewHandler(customerRepo, logger)
	dashboardHandler := orders.NewHandler(dashboardStore, customerRepo.Count, logger)

	// Initialize router and server
	router := httpServer.NewRouter(cfg, authHandler, authMiddleware, customerHandler, dashboardHandler, logger)
	server := httpServer.NewServer(&cfg.Server, router, logger)

	return server.Run()
}

// seedDemoUser creates the pre-verified demo account so the dashboard is
// usable on a fresh start.
func seedDemoUser(repo *user.Repository) error {
	hash, err := auth.HashPassword("Demo123!")
	if err != nil {
		return err
	}

	token := uuid.New().String()
	if _, err := repo.Create("demo@example.com", hash, "Demo User", token); err != nil {
		return err
	}
	if _, err := repo.ConsumeVerificationToken(token); err != nil {
		return err
	}
	return nil
}
