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

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

const openWeatherIconURL = "https://openweathermap.org/img/wn/%s@2x.png"

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap,
// querying by "zip,country" in imperial units.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	country string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	now     func() time.Time
}

func NewOpenWeatherProvider(client *http.Client, apiKey, country string) *OpenWeatherProvider {
	if country == "" {
		country = "us"
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		country: strings.ToLower(country),
		baseURL: DefaultOpenWeatherBaseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: DefaultBackoff,
		},
		circuit: newCircuitBreaker("openweather"),
		now:     time.Now,
	}
}

func (p *OpenWeatherProvider) WithBaseURL(baseURL string) *OpenWeatherProvider {
	if baseURL != "" {
		p.baseURL = strings.TrimRight(baseURL, "/")
	}
	return p
}

func (p *OpenWeatherProvider) WithBackoff(b BackoffConfig) *OpenWeatherProvider {
	p.httpCfg.Backoff = b
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (p *OpenWeatherProvider) FetchByPostalCode(ctx context.Context, code string) (weather.Reading, error) {
	zip, err := postalCode(code)
	if err != nil {
		return weather.Reading{}, err
	}
	if p.apiKey == "" {
		return weather.Reading{}, weather.Wrap(weather.ErrFetchFailed, errors.New("openweather api key is not configured"))
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "imperial")
		values.Set("zip", fmt.Sprintf("%s,%s", zip, p.country))

		u := fmt.Sprintf("%s/weather?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload openWeatherPayload
	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Reading{}, err
	}

	if payload.Main == nil || payload.Main.Temp == nil || len(payload.Weather) == 0 {
		return weather.Reading{}, weather.Wrap(weather.ErrNoWeatherData, fmt.Errorf("incomplete payload for %q", zip))
	}

	w := payload.Weather[0]
	text := w.Description
	if text == "" {
		text = w.Main
	}
	icon := ""
	if w.Icon != "" {
		icon = fmt.Sprintf(openWeatherIconURL, w.Icon)
	}

	return weather.Reading{
		LocationName:     payload.Name,
		Region:           payload.Sys.Country,
		ConditionText:    text,
		ConditionIconURL: icon,
		TemperatureF:     *payload.Main.Temp,
		Condition:        weather.ClassifyCondition(text),
		Provider:         p.name,
		FetchedAt:        p.now().UTC(),
	}, nil
}
