package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"deal-tracker/config"
	_ "deal-tracker/docs" // Swagger docs
	dealRepo "deal-tracker/internal/deal/repository/sqlite"
	"deal-tracker/internal/httpserver"
	userRepo "deal-tracker/internal/user/repository/sqlite"
	"deal-tracker/pkg/auth0"
	"deal-tracker/pkg/gcalendar"
	"deal-tracker/pkg/llmprovider"
	"deal-tracker/pkg/log"
	"deal-tracker/pkg/scope"
	"deal-tracker/pkg/sqlite"
)

// @title       Deal Tracker API
// @description Real estate deal tracking with an AI advisor that remembers the conversation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Deal Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %s: %v", cfg.SQLite.Path, err)
		return
	}
	defer db.Close()

	if err := dealRepo.Migrate(ctx, db); err != nil {
		logger.Errorf(ctx, "Failed to migrate deals: %v", err)
		return
	}
	if err := userRepo.Migrate(ctx, db); err != nil {
		logger.Errorf(ctx, "Failed to migrate users: %v", err)
		return
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider %s (%s) enabled", p.Name(), p.Model())
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)

	// 5. Sessions
	scopeManager, err := scope.New(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize session tokens: %v", err)
		return
	}

	// 6. Auth0 (optional)
	var authClient auth0.IAuth0
	if cfg.Auth0.Domain != "" && cfg.Auth0.ClientID != "" {
		client, aErr := auth0.New(auth0.Config{
			Domain:       cfg.Auth0.Domain,
			ClientID:     cfg.Auth0.ClientID,
			ClientSecret: cfg.Auth0.ClientSecret,
			CallbackURL:  cfg.Auth0.CallbackURL,
		})
		if aErr != nil {
			logger.Warnf(ctx, "Auth0 not available (optional): %v", aErr)
		} else {
			authClient = client
			logger.Infof(ctx, "Auth0 initialized for %s", cfg.Auth0.Domain)
		}
	}

	// 7. Google Calendar (optional)
	var calendar gcalendar.Scheduler
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		ScopeManager:   scopeManager,
		Auth:           cfg.Auth,
		Auth0:          authClient,
		Completer:      llm,
		Assistant:      cfg.Assistant,
		Calendar:       calendar,
		GoogleCalendar: cfg.GoogleCalendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
