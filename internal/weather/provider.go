package weather

import "context"

// Fetcher yields the current weather for a postal code.
// Implementations issue at most one upstream request per call and report
// failures as *FetchError.
type Fetcher interface {
	FetchByPostalCode(ctx context.Context, code string) (Reading, error)
}

// Provider is a named Fetcher backed by a third-party weather API
// (e.g. WeatherAPI.com, OpenWeatherMap).
type Provider interface {
	Fetcher
	Name() string
}
