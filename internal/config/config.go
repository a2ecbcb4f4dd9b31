package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the meteocast service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// DHMZ feed URLs
	ObservationsURL string `env:"DHMZ_OBSERVATIONS_URL,default=https://vrijeme.hr/hrvatska_n.xml"`
	ForecastURL     string `env:"DHMZ_FORECAST_URL,default=https://prognoza.hr/tri/3d_graf_i_simboli.xml"`
	SeaTempURL      string `env:"DHMZ_SEA_TEMP_URL,default=https://vrijeme.hr/more_n.xml"`

	// Optional weather-warning RSS feed; empty disables alert fetching.
	AlertsURL string `env:"DHMZ_ALERTS_URL"`

	// FetchTimeout bounds each upstream request.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=10s"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
