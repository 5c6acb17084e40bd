package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig

	// LLM Provider Abstraction
	LLM       LLMConfig
	Assistant AssistantConfig

	// Auth
	Auth  AuthConfig
	Auth0 Auth0Config

	// Optional integrations
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// AssistantConfig tunes the conversational assistant.
type AssistantConfig struct {
	Model           string
	MaxSlots        int
	SessionTTL      time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

// AuthConfig configures session cookies and the access gate.
type AuthConfig struct {
	SessionSecret  string
	SessionTTL     time.Duration
	CookieName     string
	CookieSecure   bool
	AdminEmails    []string
	AccessPassword string

	// PostLoginRedirect is where the browser lands after login and logout.
	PostLoginRedirect string
}

type Auth0Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
	LeadDays        int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile reads configuration from an explicit path. Used by the CLI.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = v.GetString("sqlite.path")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				timeout, _ := time.ParseDuration(getStringFromMap(providerMap, "timeout"))
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  timeout,
				})
			}
		}
	}

	// A bare OPENAI_API_KEY is enough to get a single provider.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name: "openai", Enabled: true, Priority: 1, APIKey: key, Model: v.GetString("assistant.model"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Assistant
	cfg.Assistant.Model = v.GetString("assistant.model")
	cfg.Assistant.MaxSlots = v.GetInt("assistant.max_slots")
	cfg.Assistant.SessionTTL = v.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = v.GetInt("assistant.max_sessions")
	cfg.Assistant.RateLimitPerMin = v.GetInt("assistant.rate_limit_per_min")

	// Auth
	cfg.Auth.SessionSecret = expandEnvVar(v, v.GetString("auth.session_secret"))
	cfg.Auth.SessionTTL = v.GetDuration("auth.session_ttl")
	cfg.Auth.CookieName = v.GetString("auth.cookie_name")
	cfg.Auth.CookieSecure = v.GetBool("auth.cookie_secure")
	cfg.Auth.PostLoginRedirect = v.GetString("auth.post_login_redirect")
	cfg.Auth.AccessPassword = expandEnvVar(v, v.GetString("auth.access_password"))
	if pw := v.GetString("app_password"); pw != "" {
		cfg.Auth.AccessPassword = pw
	}
	cfg.Auth.AdminEmails = splitList(v.GetString("auth.admin_emails"))
	if list := v.GetStringSlice("auth.admin_list"); len(list) > 0 {
		cfg.Auth.AdminEmails = append(cfg.Auth.AdminEmails, list...)
	}
	if cfg.Auth.SessionSecret == "" {
		return nil, fmt.Errorf("auth.session_secret is required")
	}

	cfg.Auth0.Domain = v.GetString("auth0.domain")
	cfg.Auth0.ClientID = v.GetString("auth0.client_id")
	cfg.Auth0.ClientSecret = expandEnvVar(v, v.GetString("auth0.client_secret"))
	cfg.Auth0.CallbackURL = v.GetString("auth0.callback_url")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.LeadDays = v.GetInt("google_calendar.lead_days")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("sqlite.path", "data/deals.db")

	// LLM defaults: single try, no retry
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")

	v.SetDefault("assistant.model", "gpt-4")
	v.SetDefault("assistant.max_slots", 22)
	v.SetDefault("assistant.session_ttl", "30m")
	v.SetDefault("assistant.max_sessions", 1000)
	v.SetDefault("assistant.rate_limit_per_min", 30)

	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("auth.cookie_name", "deal_session")
	v.SetDefault("auth.post_login_redirect", "/")

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "America/New_York")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
