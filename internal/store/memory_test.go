package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/i474232898/mood-weather/internal/session"
)

func TestSaveAndGet(t *testing.T) {
	m := NewMemoryStore(0, 0)
	s := session.New("a", time.Now())
	m.Save(s)

	got, err := m.Get("a")
	require.NoError(t, err)
	require.Same(t, s, got)

	_, err = m.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	m := NewMemoryStore(0, 0)
	m.Save(session.New("a", time.Now()))
	m.Delete("a")

	_, err := m.Get("a")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 0, m.Len())
}

func TestExpiredSessionIsNotReturned(t *testing.T) {
	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(0, time.Hour)
	m.now = func() time.Time { return base }

	m.Save(session.New("old", base.Add(-2*time.Hour)))
	m.Save(session.New("fresh", base.Add(-10*time.Minute)))

	_, err := m.Get("old")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get("fresh")
	require.NoError(t, err)

	require.Equal(t, 1, m.Prune())
	require.Equal(t, 1, m.Len())
}

func TestPruneWithoutMaxAge(t *testing.T) {
	m := NewMemoryStore(0, 0)
	m.Save(session.New("a", time.Unix(0, 0)))
	require.Equal(t, 0, m.Prune())
	require.Equal(t, 1, m.Len())
}

func TestCountLimitEvictsLeastRecentlySeen(t *testing.T) {
	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(2, 0)

	m.Save(session.New("first", base))
	m.Save(session.New("second", base.Add(time.Minute)))
	m.Save(session.New("third", base.Add(2*time.Minute)))

	require.Equal(t, 2, m.Len())
	_, err := m.Get("first")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get("third")
	require.NoError(t, err)
}

func TestNewSessionSurvivesEvictionEvenIfOldest(t *testing.T) {
	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(1, 0)

	m.Save(session.New("a", base))
	m.Save(session.New("b", base.Add(-time.Hour)))

	require.Equal(t, 1, m.Len())
	_, err := m.Get("b")
	require.NoError(t, err)
}
