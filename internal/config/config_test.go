package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("APP_ENV", "test")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("HISTORY_LIMIT", "25")
		t.Setenv("SAVE_LATENCY", "250ms")
		t.Setenv("SAVE_FAILURE_RATE", "0.5")
		t.Setenv("COMPANY_NAME", "Test Distributor")
		t.Setenv("LOCALE", "rw")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, 25, cfg.HistoryLimit)
		assert.Equal(t, 250*time.Millisecond, cfg.SaveLatency)
		assert.Equal(t, 0.5, cfg.SaveFailureRate)
		assert.Equal(t, "Test Distributor", cfg.CompanyName)
		assert.Equal(t, "rw", cfg.Locale)
	})

	t.Run("Defaults when knobs unset", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("HISTORY_LIMIT", "")
		t.Setenv("SAVE_LATENCY", "")
		t.Setenv("SUBMIT_LATENCY", "")
		t.Setenv("SAVE_FAILURE_RATE", "")
		t.Setenv("SUBMIT_FAILURE_RATE", "")
		t.Setenv("AUTOSAVE_DEBOUNCE", "")
		t.Setenv("COMPANY_NAME", "")
		t.Setenv("LOCALE", "")

		cfg := LoadConfig()

		assert.Equal(t, 50, cfg.HistoryLimit)
		assert.Equal(t, time.Second, cfg.SaveLatency)
		assert.Equal(t, 1500*time.Millisecond, cfg.SubmitLatency)
		assert.Equal(t, 0.10, cfg.SaveFailureRate)
		assert.Equal(t, 0.05, cfg.SubmitFailureRate)
		assert.Equal(t, 30*time.Second, cfg.AutosaveDebounce)
		assert.Equal(t, "Mount Meru Soyco Ltd", cfg.CompanyName)
		assert.Equal(t, "en", cfg.Locale)
	})

	t.Run("Malformed knob falls back to default", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("HISTORY_LIMIT", "lots")
		t.Setenv("SAVE_LATENCY", "soon")
		t.Setenv("SAVE_FAILURE_RATE", "never")

		cfg := LoadConfig()

		assert.Equal(t, 50, cfg.HistoryLimit)
		assert.Equal(t, time.Second, cfg.SaveLatency)
		assert.Equal(t, 0.10, cfg.SaveFailureRate)
	})
}
