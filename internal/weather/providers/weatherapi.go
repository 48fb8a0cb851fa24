package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/mood-weather/internal/weather"
)

// DefaultWeatherAPIBaseURL is the WeatherAPI.com v1 root.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	now     func() time.Time
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: DefaultWeatherAPIBaseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: DefaultBackoff,
		},
		circuit: newCircuitBreaker("weatherapi"),
		now:     time.Now,
	}
}

// WithBaseURL points the provider at another API root (tests, proxies).
func (p *WeatherAPIProvider) WithBaseURL(baseURL string) *WeatherAPIProvider {
	if baseURL != "" {
		p.baseURL = strings.TrimRight(baseURL, "/")
	}
	return p
}

// WithBackoff overrides the retry policy.
func (p *WeatherAPIProvider) WithBackoff(b BackoffConfig) *WeatherAPIProvider {
	p.httpCfg.Backoff = b
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// weatherAPIPayload mirrors the subset of current.json we consume. Pointers
// distinguish a missing field from a zero value.
type weatherAPIPayload struct {
	Location *struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Current *struct {
		TempF     *float64 `json:"temp_f"`
		Condition *struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`
}

func (p *WeatherAPIProvider) FetchByPostalCode(ctx context.Context, code string) (weather.Reading, error) {
	q, err := postalCode(code)
	if err != nil {
		return weather.Reading{}, err
	}
	if p.apiKey == "" {
		return weather.Reading{}, weather.Wrap(weather.ErrFetchFailed, errors.New("weatherapi api key is not configured"))
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", q)

		u := fmt.Sprintf("%s/current.json?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload weatherAPIPayload
	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Reading{}, err
	}

	cur := payload.Current
	if cur == nil || cur.TempF == nil || cur.Condition == nil || payload.Location == nil {
		return weather.Reading{}, weather.Wrap(weather.ErrNoWeatherData, fmt.Errorf("incomplete payload for %q", q))
	}

	return weather.Reading{
		LocationName:     payload.Location.Name,
		Region:           payload.Location.Region,
		ConditionText:    cur.Condition.Text,
		ConditionIconURL: weather.NormalizeIconURL(cur.Condition.Icon),
		TemperatureF:     *cur.TempF,
		Condition:        weather.ClassifyCondition(cur.Condition.Text),
		Provider:         p.name,
		FetchedAt:        p.now().UTC(),
	}, nil
}
