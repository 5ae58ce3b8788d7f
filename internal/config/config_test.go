package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 30*time.Second, cfg.ReminderInterval)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 10, cfg.RefillRatePerMin)
	assert.Empty(t, cfg.PremiumEmails)
	assert.False(t, cfg.LLMEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Badger")
	t.Setenv("BADGER_PATH", "/tmp/meds")
	t.Setenv("REMINDER_INTERVAL", "1m")
	t.Setenv("PREMIUM_EMAILS", " a@b.com, ,c@d.com ")
	t.Setenv("ALLOW_ALL_CAPABILITIES", "true")
	t.Setenv("DEFAULT_TIMEZONE", "America/New_York")
	t.Setenv("LLM_BASE_URL", "https://api.example.com/v1")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageBadger, cfg.StorageDriver)
	assert.Equal(t, "/tmp/meds", cfg.BadgerPath)
	assert.Equal(t, time.Minute, cfg.ReminderInterval)
	assert.Equal(t, []string{"a@b.com", "c@d.com"}, cfg.PremiumEmails)
	assert.True(t, cfg.AllowAllCapabilities)
	assert.True(t, cfg.LLMEnabled())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Env:              "development",
			StorageDriver:    StorageMemory,
			DefaultTimezone:  "UTC",
			ReminderInterval: 30 * time.Second,
			LLMTimeout:       time.Second,
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"postgres without dsn", func(c *Config) { c.StorageDriver = StoragePostgres }, false},
		{"postgres with dsn", func(c *Config) { c.StorageDriver = StoragePostgres; c.DBDSN = "postgres://x" }, true},
		{"unknown driver", func(c *Config) { c.StorageDriver = "mongo" }, false},
		{"prod without secret", func(c *Config) { c.Env = "production" }, false},
		{"prod with secret", func(c *Config) { c.Env = "production"; c.AuthJWTSecret = "s" }, true},
		{"prod allow all", func(c *Config) { c.Env = "production"; c.AuthJWTSecret = "s"; c.AllowAllCapabilities = true }, false},
		{"bad timezone", func(c *Config) { c.DefaultTimezone = "Mars/Olympus" }, false},
		{"interval too small", func(c *Config) { c.ReminderInterval = 10 * time.Millisecond }, false},
		{"negative rate", func(c *Config) { c.RefillRatePerMin = -1 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
