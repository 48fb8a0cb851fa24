package weather

import "errors"

// FetchError carries the user-facing message for a failed fetch and, when
// known, the underlying cause.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches any FetchError carrying the same message, so wrapped failures
// compare equal to the sentinels below.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	return ok && t.Message == e.Message
}

var (
	// ErrMissingPostalCode is returned before any network call when the code is empty.
	ErrMissingPostalCode = &FetchError{Message: "Please enter a zip code"}
	// ErrFetchFailed covers transport failures and non-success statuses.
	ErrFetchFailed = &FetchError{Message: "Could not fetch weather data"}
	// ErrNoWeatherData is returned when the payload lacks current conditions.
	ErrNoWeatherData = &FetchError{Message: "No weather data available for this zip code"}
)

// Wrap attaches cause to a copy of the sentinel.
func Wrap(sentinel *FetchError, cause error) error {
	return &FetchError{Message: sentinel.Message, Err: cause}
}

// UserMessage returns the text to show for err. Errors that are not a
// FetchError are reported as a failed fetch.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return ErrFetchFailed.Message
}
