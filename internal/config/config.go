package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageBadger   = "badger"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DBDSN         string `mapstructure:"DB_DSN"`
	BadgerPath    string `mapstructure:"BADGER_PATH"`

	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	AuthIssuer    string `mapstructure:"AUTH_ISSUER"`
	AuthAudience  string `mapstructure:"AUTH_AUDIENCE"`

	LLMBaseURL string        `mapstructure:"LLM_BASE_URL"`
	LLMAPIKey  string        `mapstructure:"LLM_API_KEY"`
	LLMModel   string        `mapstructure:"LLM_MODEL"`
	LLMTimeout time.Duration `mapstructure:"LLM_TIMEOUT"`

	DefaultTimezone  string        `mapstructure:"DEFAULT_TIMEZONE"`
	ReminderInterval time.Duration `mapstructure:"REMINDER_INTERVAL"`
	RefillRatePerMin int           `mapstructure:"REFILL_RATE_PER_MIN"`

	PremiumEmails        []string `mapstructure:"-"`
	AllowAllCapabilities bool     `mapstructure:"ALLOW_ALL_CAPABILITIES"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"STORAGE_DRIVER", "DB_DSN", "BADGER_PATH",
	"AUTH_JWT_SECRET", "AUTH_ISSUER", "AUTH_AUDIENCE",
	"LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL", "LLM_TIMEOUT",
	"DEFAULT_TIMEZONE", "REMINDER_INTERVAL", "REFILL_RATE_PER_MIN",
	"PREMIUM_EMAILS", "ALLOW_ALL_CAPABILITIES",
}

// Load lee env (y .env si existe). No valida; ver Validate.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "medication-reminder")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("LLM_TIMEOUT", "15s")
	v.SetDefault("DEFAULT_TIMEZONE", "UTC")
	v.SetDefault("REMINDER_INTERVAL", "30s")
	v.SetDefault("REFILL_RATE_PER_MIN", 10)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.PremiumEmails = splitList(v.GetString("PREMIUM_EMAILS"))
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "test"
}

// Location resuelve DEFAULT_TIMEZONE (vacío = UTC).
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.DefaultTimezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

// LLMEnabled: sin base url o modelo se usa la recomendación determinística.
func (c *Config) LLMEnabled() bool {
	return strings.TrimSpace(c.LLMBaseURL) != "" && strings.TrimSpace(c.LLMModel) != ""
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageBadger:
	case StoragePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q, %q or %q, got %q",
			StorageMemory, StoragePostgres, StorageBadger, c.StorageDriver)
	}

	// Fuera de dev no se aceptan los headers X-Debug-*.
	if !c.IsDev() && strings.TrimSpace(c.AuthJWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required when ENV=%q", c.Env)
	}
	if !c.IsDev() && c.AllowAllCapabilities {
		return fmt.Errorf("ALLOW_ALL_CAPABILITIES is only allowed in development")
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ReminderInterval < time.Second {
		return fmt.Errorf("REMINDER_INTERVAL must be at least 1s, got %s", c.ReminderInterval)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLMTimeout)
	}
	if c.RefillRatePerMin < 0 {
		return fmt.Errorf("REFILL_RATE_PER_MIN must be >= 0, got %d", c.RefillRatePerMin)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
