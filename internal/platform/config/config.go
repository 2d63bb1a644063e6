package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Invoice numbering schemes.
const (
	NumberingSequential = "sequential"
	NumberingRandom     = "random"
)

// Config holds application configuration.
type Config struct {
	DBPath             string
	LogFile            string
	LogLevel           string
	HTTPAddr           string
	IsProduction       bool
	CurrencyCode       string
	InvoiceNumbering   string
	InvoiceOutputDir   string
	BackupOnStartup    bool
	CORSAllowedOrigins []string
	InvoiceRateLimit   string        // ulule formatted rate, e.g. "10-M"
	RenderTimeout      time.Duration // upper bound for one PDF render
	ChromeRemoteURL    string        // DevTools websocket of a running browser; empty starts a local one
}

// Load reads a .env file if present, then the environment, over the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("DB_PATH", "finance.db")
	v.SetDefault("LOG_FILE", "finance_manager.log")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", "127.0.0.1:8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CURRENCY_CODE", "USD")
	v.SetDefault("INVOICE_NUMBERING", NumberingSequential)
	v.SetDefault("INVOICE_OUTPUT_DIR", ".")
	v.SetDefault("BACKUP_ON_STARTUP", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("INVOICE_RATE_LIMIT", "30-M")
	v.SetDefault("RENDER_TIMEOUT", "30s")
	v.SetDefault("CHROME_REMOTE_URL", "")

	v.AutomaticEnv()

	cfg := &Config{
		DBPath:           v.GetString("DB_PATH"),
		LogFile:          v.GetString("LOG_FILE"),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		CurrencyCode:     strings.ToUpper(v.GetString("CURRENCY_CODE")),
		InvoiceNumbering: strings.ToLower(v.GetString("INVOICE_NUMBERING")),
		InvoiceOutputDir: v.GetString("INVOICE_OUTPUT_DIR"),
		BackupOnStartup:  v.GetBool("BACKUP_ON_STARTUP"),
		InvoiceRateLimit: v.GetString("INVOICE_RATE_LIMIT"),
		ChromeRemoteURL:  v.GetString("CHROME_REMOTE_URL"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	renderTimeoutStr := v.GetString("RENDER_TIMEOUT")
	renderTimeout, err := time.ParseDuration(renderTimeoutStr)
	if err != nil || renderTimeout <= 0 {
		renderTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for RENDER_TIMEOUT ('%s'). Defaulting to %s.\n", renderTimeoutStr, renderTimeout)
	}
	cfg.RenderTimeout = renderTimeout

	if strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("DB_PATH must not be empty")
	}
	switch cfg.InvoiceNumbering {
	case NumberingSequential, NumberingRandom:
	default:
		return nil, fmt.Errorf("INVOICE_NUMBERING must be %q or %q, got %q", NumberingSequential, NumberingRandom, cfg.InvoiceNumbering)
	}

	return cfg, nil
}
