package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeIconURL(t *testing.T) {
	require.Equal(t, "http://cdn.weatherapi.com/weather/64x64/day/113.png",
		NormalizeIconURL("//cdn.weatherapi.com/weather/64x64/day/113.png"))
	require.Equal(t, "https://example.com/a.png", NormalizeIconURL("https://example.com/a.png"))
	require.Equal(t, "", NormalizeIconURL(""))
}

func TestClassifyCondition(t *testing.T) {
	cases := map[string]Condition{
		"":                             ConditionUnknown,
		"Sunny":                        ConditionClear,
		"Clear":                        ConditionClear,
		"Partly cloudy":                ConditionCloudy,
		"Overcast":                     ConditionCloudy,
		"Patchy light drizzle":         ConditionRain,
		"Moderate or heavy snow":       ConditionSnow,
		"Moderate rain with thunder":   ConditionStorm,
		"Mist":                         ConditionMist,
		"Freezing fog":                 ConditionMist,
		"Something the API just added": ConditionUnknown,
	}
	for text, want := range cases {
		require.Equal(t, want, ClassifyCondition(text), text)
	}
}

func TestFetchErrorMatching(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(ErrFetchFailed, cause)

	require.True(t, errors.Is(err, ErrFetchFailed))
	require.False(t, errors.Is(err, ErrNoWeatherData))
	require.True(t, errors.Is(err, cause))
	require.Equal(t, "Could not fetch weather data", UserMessage(err))
	require.Equal(t, "Could not fetch weather data: dial tcp: connection refused", err.Error())

	wrapped := fmt.Errorf("provider weatherapi: %w", Wrap(ErrNoWeatherData, nil))
	require.Equal(t, "No weather data available for this zip code", UserMessage(wrapped))
}

func TestUserMessageFallbacks(t *testing.T) {
	require.Equal(t, "", UserMessage(nil))
	require.Equal(t, "Could not fetch weather data", UserMessage(context.Canceled))
	require.Equal(t, "Please enter a zip code", UserMessage(ErrMissingPostalCode))
}
