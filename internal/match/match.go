package match

import (
	"github.com/i474232898/mood-weather/internal/mood"
	"github.com/i474232898/mood-weather/internal/weather"
)

// Result is the outcome of comparing a mood interval with a reading.
type Result string

const (
	Undetermined Result = "undetermined"
	Match        Result = "match"
	NoMatch      Result = "no_match"
)

// Evaluate returns Match when the reading's temperature lies inside the
// interval (inclusive), NoMatch when it does not, and Undetermined when
// either input is missing.
func Evaluate(interval *mood.Interval, reading *weather.Reading) Result {
	if interval == nil || reading == nil {
		return Undetermined
	}
	if interval.Contains(reading.TemperatureF) {
		return Match
	}
	return NoMatch
}

// Message is the sentence shown to the user for r.
func (r Result) Message() string {
	switch r {
	case Match:
		return "Your location matches your mood! 😲"
	case NoMatch:
		return "Your location does not match your mood."
	default:
		return ""
	}
}
