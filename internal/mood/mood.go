package mood

import (
	"errors"
	"sort"
	"strconv"

	"github.com/i474232898/mood-weather/internal/common"
)

// Interval is a closed temperature range in degrees Fahrenheit.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Key returns the "low,high" form used to index city buckets.
func (i Interval) Key() string {
	return FormatTemp(i.Low) + "," + FormatTemp(i.High)
}

// Contains reports whether tempF lies within the interval, both ends inclusive.
func (i Interval) Contains(tempF float64) bool {
	return tempF >= i.Low && tempF <= i.High
}

// FormatTemp renders a temperature in its shortest decimal form (70, 32.5).
func FormatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Entry is one row of the mood table.
type Entry struct {
	Label string   `json:"label"`
	Range Interval `json:"range"`
}

// ValidationError is returned when a mood cannot be resolved.
type ValidationError struct {
	Message string
	Input   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError carrying the same message.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Message == e.Message
}

// ErrInvalidMood is the only failure Resolve produces.
var ErrInvalidMood = &ValidationError{Message: "Please enter a valid mood"}

// table is built once and never written afterwards.
var table = map[string]Interval{
	"happy":       {Low: 70, High: 80},
	"sad":         {Low: 30, High: 40},
	"angry":       {Low: 80, High: 90},
	"calm":        {Low: 60, High: 70},
	"excited":     {Low: 80, High: 100},
	"relaxed":     {Low: 60, High: 80},
	"content":     {Low: 70, High: 90},
	"gloomy":      {Low: 20, High: 30},
	"tired":       {Low: 40, High: 50},
	"anxious":     {Low: 50, High: 60},
	"nostalgic":   {Low: 40, High: 60},
	"lonely":      {Low: 10, High: 20},
	"bored":       {Low: 30, High: 50},
	"energetic":   {Low: 90, High: 100},
	"grumpy":      {Low: 0, High: 10},
	"adventurous": {Low: 85, High: 95},
}

// Resolve maps free-text mood input to its temperature interval.
func Resolve(text string) (Interval, error) {
	key := common.NormalizeKey(text)
	if key == "" {
		return Interval{}, &ValidationError{Message: ErrInvalidMood.Message, Input: text}
	}
	rng, ok := table[key]
	if !ok {
		return Interval{}, &ValidationError{Message: ErrInvalidMood.Message, Input: text}
	}
	return rng, nil
}

// Entries returns a copy of the mood table ordered by label.
func Entries() []Entry {
	out := make([]Entry, 0, len(table))
	for label, rng := range table {
		out = append(out, Entry{Label: label, Range: rng})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// IsValidationError reports whether err came from Resolve.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
