package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/mood-weather/internal/weather/providers"
)

type AppConfig struct {
	// Provider selects and configures the upstream weather API.
	Provider providers.Settings

	// HTTPTimeout bounds outbound provider calls (0 = no explicit timeout).
	HTTPTimeout time.Duration

	// Session retention.
	SessionMaxCount int           // max number of live sessions (0 = unlimited)
	SessionMaxAge   time.Duration // idle time before a session expires (0 = never)

	// SweepInterval controls how often expired sessions are pruned.
	SweepInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	kind := strings.ToLower(getenvDefault("WEATHER_PROVIDER", providers.KindWeatherAPI))
	if kind != providers.KindWeatherAPI && kind != providers.KindOpenWeather {
		return nil, fmt.Errorf("invalid WEATHER_PROVIDER %q", kind)
	}
	cfg.Provider = providers.Settings{
		Kind:               kind,
		WeatherAPIKey:      os.Getenv("WEATHERAPI_API_KEY"),
		WeatherAPIBaseURL:  getenvDefault("WEATHERAPI_BASE_URL", providers.DefaultWeatherAPIBaseURL),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherBaseURL),
		OpenWeatherCountry: getenvDefault("OPENWEATHER_COUNTRY", "us"),
		MaxRetries:         getenvInt("FETCH_MAX_RETRIES", 0),
	}

	timeout, err := getenvDuration("HTTP_TIMEOUT", "0s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.SessionMaxCount = getenvInt("SESSION_MAX_COUNT", 10000)

	maxAge, err := getenvDuration("SESSION_MAX_AGE", "24h")
	if err != nil {
		return nil, err
	}
	cfg.SessionMaxAge = maxAge

	sweep, err := getenvDuration("SESSION_SWEEP_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = sweep

	cfg.Port = getenvDefault("PORT", "8080")

	if cfg.activeKey() == "" {
		log.Printf("INFO: no API key configured for weather provider %q; weather lookups will fail", kind)
	}

	return cfg, nil
}

func (c *AppConfig) activeKey() string {
	if c.Provider.Kind == providers.KindOpenWeather {
		return c.Provider.OpenWeatherAPIKey
	}
	return c.Provider.WeatherAPIKey
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
