package weather

import (
	"strings"
	"time"

	"github.com/i474232898/mood-weather/internal/common"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Reading is the normalized current-conditions view for one postal code.
// A new fetch replaces it as a whole.
type Reading struct {
	LocationName     string    `json:"locationName"`
	Region           string    `json:"region"`
	ConditionText    string    `json:"conditionText"`
	ConditionIconURL string    `json:"conditionIconUrl"`
	TemperatureF     float64   `json:"temperatureF"`
	Condition        Condition `json:"condition"`
	Provider         string    `json:"provider"`
	FetchedAt        time.Time `json:"fetchedAt"` // always UTC
}

// NormalizeIconURL turns a protocol-relative icon reference into an explicit http URL.
func NormalizeIconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "http:" + icon
	}
	return icon
}

// ClassifyCondition maps free-form condition text onto a Condition.
// Storm is checked before rain so "thundery showers" is a storm.
func ClassifyCondition(text string) Condition {
	switch {
	case strings.TrimSpace(text) == "":
		return ConditionUnknown
	case common.HasAny(text, "thunder", "storm"):
		return ConditionStorm
	case common.HasAny(text, "snow", "sleet", "blizzard", "ice pellets"):
		return ConditionSnow
	case common.HasAny(text, "rain", "shower", "drizzle"):
		return ConditionRain
	case common.HasAny(text, "mist", "fog", "haze"):
		return ConditionMist
	case common.HasAny(text, "cloud", "overcast"):
		return ConditionCloudy
	case common.HasAny(text, "sunny", "clear"):
		return ConditionClear
	default:
		return ConditionUnknown
	}
}
