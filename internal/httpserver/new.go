package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"deal-tracker/config"
	"deal-tracker/internal/assistant/memory"
	"deal-tracker/pkg/auth0"
	"deal-tracker/pkg/gcalendar"
	"deal-tracker/pkg/log"
	"deal-tracker/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Auth
	scopeManager scope.Manager
	authCfg      config.AuthConfig
	auth0        auth0.IAuth0

	// Assistant
	completer    memory.Completer
	assistantCfg config.AssistantConfig

	// Optional integrations
	calendar    gcalendar.Scheduler
	calendarCfg config.GoogleCalendarConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	ScopeManager scope.Manager
	Auth         config.AuthConfig
	// Auth0 is optional. Without it the login routes answer 503.
	Auth0 auth0.IAuth0

	Completer memory.Completer
	Assistant config.AssistantConfig

	// Calendar is optional. Without it no reminders are scheduled.
	Calendar       gcalendar.Scheduler
	GoogleCalendar config.GoogleCalendarConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		db:           cfg.DB,
		scopeManager: cfg.ScopeManager,
		authCfg:      cfg.Auth,
		auth0:        cfg.Auth0,
		completer:    cfg.Completer,
		assistantCfg: cfg.Assistant,
		calendar:     cfg.Calendar,
		calendarCfg:  cfg.GoogleCalendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.completer == nil {
		return errors.New("completer is required")
	}
	return nil
}
