package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingPruner struct {
	calls int32
}

func (p *countingPruner) Prune() int {
	atomic.AddInt32(&p.calls, 1)
	return 1
}

func TestStartRunsSweep(t *testing.T) {
	p := &countingPruner{}
	s := New(p, time.Hour)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&p.calls) >= 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestStartWithoutPruner(t *testing.T) {
	s := New(nil, time.Minute)
	require.NoError(t, s.Start())
	s.Stop()
}
