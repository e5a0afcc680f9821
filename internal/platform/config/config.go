package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the batch job configuration.
type Config struct {
	TransactionCount       int           `validate:"gte=0"`
	BatchSize              int           `validate:"gte=1"`
	BaseCurrency           string        `validate:"required,len=3,uppercase"`
	HTTPTimeout            time.Duration `validate:"gt=0"`
	HTTPRetries            int           `validate:"gte=0"`
	ExchangeRateServiceURL string        `validate:"required,url"`
	TransactionServiceURL  string        `validate:"required,url"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("TRANSACTION_COUNT", 5)
	viper.SetDefault("BATCH_SIZE", 5)
	viper.SetDefault("BASE_CURRENCY", "EUR")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "15s")
	viper.SetDefault("HTTP_CLIENT_RETRIES", 5)
	viper.SetDefault("EXCHANGE_RATE_SERVICE", "")
	viper.SetDefault("TRANSACTION_SERVICE", "")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.TransactionCount = viper.GetInt("TRANSACTION_COUNT")
	cfg.BatchSize = viper.GetInt("BATCH_SIZE")
	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	cfg.HTTPRetries = viper.GetInt("HTTP_CLIENT_RETRIES")
	cfg.ExchangeRateServiceURL = viper.GetString("EXCHANGE_RATE_SERVICE")
	cfg.TransactionServiceURL = viper.GetString("TRANSACTION_SERVICE")

	// Load HTTP timeout (e.g., "15s", "1m")
	timeoutStr := viper.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPTimeout = timeout

	if cfg.ExchangeRateServiceURL == "" {
		log.Println("Warning: EXCHANGE_RATE_SERVICE environment variable not set.")
	}
	if cfg.TransactionServiceURL == "" {
		log.Println("Warning: TRANSACTION_SERVICE environment variable not set.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
