package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/mood-weather/internal/cities"
	"github.com/i474232898/mood-weather/internal/match"
	"github.com/i474232898/mood-weather/internal/mood"
	"github.com/i474232898/mood-weather/internal/weather"
)

// Store is the contract the in-memory session store satisfies.
type Store interface {
	Save(s *Session)
	Get(id string) (*Session, error)
	Delete(id string)
}

// Service runs the mood and weather tracks for each session.
type Service struct {
	store   Store
	fetcher weather.Fetcher
	now     func() time.Time
	newID   func() string
}

// NewService creates a new Service.
func NewService(store Store, fetcher weather.Fetcher) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Open returns the session for id, creating a fresh one when id is empty
// or unknown (expired, evicted, or forged).
func (svc *Service) Open(id string) *Session {
	now := svc.now()
	if id != "" {
		if s, err := svc.store.Get(id); err == nil {
			s.touch(now)
			return s
		}
	}

	s := New(svc.newID(), now)
	svc.store.Save(s)
	log.Printf("DEBUG: session %s created", s.ID())
	return s
}

// Peek returns the session for id without creating one. A missing or
// unknown id yields an empty session with no ID that is never stored.
func (svc *Service) Peek(id string) *Session {
	now := svc.now()
	if id != "" {
		if s, err := svc.store.Get(id); err == nil {
			s.touch(now)
			return s
		}
	}
	return New("", now)
}

// SubmitMood resolves text and records the outcome on the mood track.
// An invalid mood clears any previously resolved interval.
func (svc *Service) SubmitMood(s *Session, text string) View {
	rng, err := mood.Resolve(text)
	s.applyMood(text, rng, err, svc.now())
	return svc.View(s)
}

// SubmitPostalCode fetches weather for code and records the outcome on the
// weather track. The previous reading stays visible while the request is in
// flight; a failure discards it. Results from superseded submissions are
// dropped.
func (svc *Service) SubmitPostalCode(ctx context.Context, s *Session, code string) View {
	token := s.beginFetch(code, svc.now())

	reading, err := svc.fetcher.FetchByPostalCode(ctx, code)
	msg := ""
	if err != nil {
		msg = weather.UserMessage(err)
		log.Printf("INFO: session %s weather fetch for %q failed: %v", s.ID(), code, err)
	}

	if !s.completeFetch(token, reading, msg) {
		log.Printf("DEBUG: session %s dropped stale weather result for %q", s.ID(), code)
	}
	return svc.View(s)
}

// Reset returns the session to its initial state and invalidates any
// fetch still in flight.
func (svc *Service) Reset(s *Session) View {
	s.reset(svc.now())
	return svc.View(s)
}

// View derives the display state for s.
func (svc *Service) View(s *Session) View {
	st, loading := s.snapshot()

	v := View{
		State:   st,
		Loading: loading,
		Match:   match.Evaluate(st.Interval, st.Reading),
		Cities:  cities.Suggest(st.Interval),
	}
	v.MatchMessage = v.Match.Message()
	if st.Interval != nil {
		v.RangeText = fmt.Sprintf("Your mood corresponds to a temperature range of %s°F - %s°F.",
			mood.FormatTemp(st.Interval.Low), mood.FormatTemp(st.Interval.High))
	}
	return v
}
