package mood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownMoods(t *testing.T) {
	for label, want := range table {
		got, err := Resolve(label)
		require.NoError(t, err, label)
		require.Equal(t, want, got, label)
	}
}

func TestResolveNormalizesInput(t *testing.T) {
	got, err := Resolve("  HAPPY ")
	require.NoError(t, err)
	require.Equal(t, Interval{Low: 70, High: 80}, got)
}

func TestResolveRejectsUnknownAndEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "xyz", "happy!"} {
		_, err := Resolve(input)
		require.Error(t, err, input)
		require.True(t, errors.Is(err, ErrInvalidMood), input)
		require.True(t, IsValidationError(err))
		require.Equal(t, "Please enter a valid mood", err.Error())
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	got, err := Resolve("sad")
	require.NoError(t, err)
	got.Low = -100

	again, err := Resolve("sad")
	require.NoError(t, err)
	require.Equal(t, Interval{Low: 30, High: 40}, again)
}

func TestIntervalKeyAndContains(t *testing.T) {
	require.Equal(t, "70,80", Interval{Low: 70, High: 80}.Key())
	require.Equal(t, "0,10", Interval{Low: 0, High: 10}.Key())
	require.Equal(t, "32.5,40", Interval{Low: 32.5, High: 40}.Key())

	rng := Interval{Low: 70, High: 80}
	require.True(t, rng.Contains(70))
	require.True(t, rng.Contains(80))
	require.True(t, rng.Contains(75.4))
	require.False(t, rng.Contains(69.9))
	require.False(t, rng.Contains(80.1))
}

func TestEntriesSortedAndDetached(t *testing.T) {
	entries := Entries()
	require.Len(t, entries, len(table))
	for i := 1; i < len(entries); i++ {
		require.Less(t, entries[i-1].Label, entries[i].Label)
	}

	entries[0].Range.High = 1000
	got, err := Resolve(entries[0].Label)
	require.NoError(t, err)
	require.NotEqual(t, 1000.0, got.High)
}

func TestTableIntervalsWellFormed(t *testing.T) {
	for label, rng := range table {
		require.LessOrEqual(t, rng.Low, rng.High, label)
	}
}
