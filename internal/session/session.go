package session

import (
	"sync"
	"time"

	"github.com/i474232898/mood-weather/internal/match"
	"github.com/i474232898/mood-weather/internal/mood"
	"github.com/i474232898/mood-weather/internal/weather"
)

// State is everything one visitor has entered or had derived for them.
// The zero value is the initial state.
type State struct {
	PostalCode  string           `json:"postalCode"`
	MoodText    string           `json:"moodText"`
	Interval    *mood.Interval   `json:"interval"`
	Reading     *weather.Reading `json:"reading"`
	PostalError string           `json:"postalError,omitempty"`
	MoodError   string           `json:"moodError,omitempty"`
}

// View is State plus the display text derived from it.
type View struct {
	State
	Loading      bool         `json:"loading"`
	RangeText    string       `json:"rangeText,omitempty"`
	Match        match.Result `json:"match"`
	MatchMessage string       `json:"matchMessage,omitempty"`
	Cities       []string     `json:"cities"`
}

// Session holds one visitor's State. All mutation happens under mu and
// never spans a network call.
type Session struct {
	id string

	mu    sync.Mutex
	state State
	// generation increments on every postal submission and on reset; a fetch
	// result is applied only if the generation it started with is still current.
	generation uint64
	settled    uint64 // generation of the last applied result
	lastSeen   time.Time
}

// New returns an empty session last seen at now.
func New(id string, now time.Time) *Session {
	return &Session{id: id, lastSeen: now}
}

// ID returns the session identifier carried in the visitor's cookie.
func (s *Session) ID() string {
	return s.id
}

// LastSeen returns the time of the most recent operation on the session.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// snapshot returns a copy of the state that shares no pointers with s, and
// whether a postal submission is still awaiting its result.
func (s *Session) snapshot() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	if s.state.Interval != nil {
		rng := *s.state.Interval
		out.Interval = &rng
	}
	if s.state.Reading != nil {
		r := *s.state.Reading
		out.Reading = &r
	}
	return out, s.settled != s.generation
}

func (s *Session) applyMood(text string, rng mood.Interval, err error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
	s.state.MoodText = text
	if err != nil {
		s.state.MoodError = mood.ErrInvalidMood.Message
		s.state.Interval = nil
		return
	}
	s.state.MoodError = ""
	s.state.Interval = &rng
}

// beginFetch records a new postal submission and returns its token.
// The current reading is left in place until the result arrives.
func (s *Session) beginFetch(code string, now time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
	s.state.PostalCode = code
	s.state.PostalError = ""
	s.generation++
	return s.generation
}

// completeFetch applies a fetch outcome. It reports false and changes
// nothing when token has been superseded.
func (s *Session) completeFetch(token uint64, reading weather.Reading, errMsg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation {
		return false
	}
	s.settled = token
	if errMsg != "" {
		s.state.PostalError = errMsg
		s.state.Reading = nil
		return true
	}
	s.state.PostalError = ""
	s.state.Reading = &reading
	return true
}

func (s *Session) reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	s.generation++
	s.settled = s.generation
	s.lastSeen = now
}
