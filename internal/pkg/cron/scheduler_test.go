package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJob_SkipsDisabled(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "on", Interval: time.Minute, Fn: func(ctx context.Context) error { return nil }})
	s.AddJob(Job{Name: "off", Interval: 0, Fn: func(ctx context.Context) error { return nil }})

	assert.Equal(t, []string{"on"}, s.Jobs())
}

func TestScheduler_RunOnce_JoinsErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	var ran atomic.Int32
	s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: func(ctx context.Context) error { ran.Add(1); return nil }})
	s.AddJob(Job{Name: "bad", Interval: time.Hour, Fn: func(ctx context.Context) error { ran.Add(1); return boom }})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.Equal(t, int32(2), ran.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()
	var ran atomic.Int32
	s.AddJob(Job{Name: "tick", Interval: 10 * time.Millisecond, RunOnStart: true, Fn: func(ctx context.Context) error {
		ran.Add(1)
		return nil
	}})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return ran.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := ran.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ran.Load())

	s.Stop()
}
