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

	// Planner specifics
	Planner        PlannerConfig
	Postgres       PostgresConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
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

// PlannerConfig tunes the conversation pipeline.
type PlannerConfig struct {
	LLMTimeout   time.Duration
	OverrideGate string // "core" or "minimum"
	Temperature  float64
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	CookieName string
	CacheTTL   time.Duration
	CacheSize  int
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	TrackedClients  int
	TrackedLifetime time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.LLMTimeout = viper.GetDuration("planner.llm_timeout")
	cfg.Planner.OverrideGate = viper.GetString("planner.override_gate")
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("postgres_dsn"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	// Session & rate limiting
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CacheTTL = viper.GetDuration("session.cache_ttl")
	cfg.Session.CacheSize = viper.GetInt("session.cache_size")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.TrackedClients = viper.GetInt("rate_limit.tracked_clients")
	cfg.RateLimit.TrackedLifetime = viper.GetDuration("rate_limit.tracked_lifetime")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// A bare GEMINI_API_KEY is enough to run with the Gemini endpoint.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    "gemini-2.0-flash",
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := validatePlannerConfig(&cfg.Planner); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Planner defaults
	viper.SetDefault("planner.llm_timeout", "15s")
	viper.SetDefault("planner.override_gate", "core")
	viper.SetDefault("planner.temperature", 0.7)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("session.cookie_name", "auth_session")
	viper.SetDefault("session.cache_ttl", "1m")
	viper.SetDefault("session.cache_size", 1024)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 20)
	viper.SetDefault("rate_limit.tracked_clients", 10000)
	viper.SetDefault("rate_limit.tracked_lifetime", "10m")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")

	// LLM defaults: one attempt per request, the planner owns the deadline.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "15s")
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set GEMINI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
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

	for _, d := range []string{cfg.RetryDelay, cfg.MaxTotalTimeout} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid llm duration %q: %w", d, err)
		}
	}

	return nil
}

func validatePlannerConfig(cfg *PlannerConfig) error {
	switch cfg.OverrideGate {
	case "core", "minimum":
	default:
		return fmt.Errorf("planner.override_gate must be core or minimum, got %q", cfg.OverrideGate)
	}
	if cfg.LLMTimeout <= 0 {
		return fmt.Errorf("planner.llm_timeout must be positive")
	}
	return nil
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
