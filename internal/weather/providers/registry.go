package providers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/i474232898/mood-weather/internal/weather"
)

const (
	KindWeatherAPI  = "weatherapi"
	KindOpenWeather = "openweather"
)

// Settings selects and configures the upstream provider.
type Settings struct {
	Kind string

	WeatherAPIKey     string
	WeatherAPIBaseURL string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherCountry string

	MaxRetries int
}

// New builds the provider named by s.Kind.
func New(client *http.Client, s Settings) (weather.Provider, error) {
	backoff := DefaultBackoff
	if s.MaxRetries > 0 {
		backoff.MaxRetries = s.MaxRetries
	}

	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", KindWeatherAPI:
		return NewWeatherAPIProvider(client, s.WeatherAPIKey).
			WithBaseURL(s.WeatherAPIBaseURL).
			WithBackoff(backoff), nil
	case KindOpenWeather:
		return NewOpenWeatherProvider(client, s.OpenWeatherAPIKey, s.OpenWeatherCountry).
			WithBaseURL(s.OpenWeatherBaseURL).
			WithBackoff(backoff), nil
	default:
		return nil, fmt.Errorf("unknown weather provider %q", s.Kind)
	}
}
