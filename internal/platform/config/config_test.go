package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "finance.db", cfg.DBPath)
	assert.Equal(t, "finance_manager.log", cfg.LogFile)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, NumberingSequential, cfg.InvoiceNumbering)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.BackupOnStartup)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/books.db")
	t.Setenv("CURRENCY_CODE", "eur")
	t.Setenv("INVOICE_NUMBERING", "Random")
	t.Setenv("BACKUP_ON_STARTUP", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://127.0.0.1:5173 ,")
	t.Setenv("RENDER_TIMEOUT", "5s")

	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "/tmp/books.db", cfg.DBPath)
	assert.Equal(t, "EUR", cfg.CurrencyCode)
	assert.Equal(t, NumberingRandom, cfg.InvoiceNumbering)
	assert.True(t, cfg.BackupOnStartup)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
}

func TestLoad_RejectsUnknownNumbering(t *testing.T) {
	t.Setenv("INVOICE_NUMBERING", "hex")

	_, err := loadFrom(viper.New())

	assert.ErrorContains(t, err, "INVOICE_NUMBERING")
}

func TestLoad_InvalidRenderTimeoutFallsBack(t *testing.T) {
	t.Setenv("RENDER_TIMEOUT", "soon")

	cfg, err := loadFrom(viper.New())

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
}
