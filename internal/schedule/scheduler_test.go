package schedule

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	wait    time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeTimers records every armed timer so tests fire them by hand.
type fakeTimers struct {
	mu    sync.Mutex
	armed []*fakeTimer
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	t := &fakeTimer{wait: d, f: f}
	ft.armed = append(ft.armed, t)
	return t
}

func (ft *fakeTimers) last(t *testing.T) *fakeTimer {
	t.Helper()
	ft.mu.Lock()
	defer ft.mu.Unlock()
	require.NotEmpty(t, ft.armed)
	return ft.armed[len(ft.armed)-1]
}

func (ft *fakeTimers) count() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return len(ft.armed)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(start time.Time) (*Scheduler, *FakeClock, *fakeTimers) {
	clock := NewFakeClock(start)
	timers := &fakeTimers{}
	s := New(Options{Clock: clock, AfterFunc: timers.AfterFunc, Logger: quietLogger()})
	return s, clock, timers
}

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"afternoon", time.Date(2026, 10, 19, 15, 30, 0, 0, loc), time.Date(2026, 10, 20, 0, 0, 0, 0, loc)},
		{"exactly midnight", time.Date(2026, 10, 20, 0, 0, 0, 0, loc), time.Date(2026, 10, 21, 0, 0, 0, 0, loc)},
		{"just before midnight", time.Date(2026, 10, 19, 23, 59, 59, 999, loc), time.Date(2026, 10, 20, 0, 0, 0, 0, loc)},
		{"month end", time.Date(2026, 2, 28, 8, 0, 0, 0, loc), time.Date(2026, 3, 1, 0, 0, 0, 0, loc)},
		{"year end", time.Date(2026, 12, 31, 22, 0, 0, 0, loc), time.Date(2027, 1, 1, 0, 0, 0, 0, loc)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextMidnight(tc.now)
			assert.True(t, tc.want.Equal(got), "got %s, want %s", got, tc.want)
			assert.Equal(t, tc.want.Sub(tc.now), UntilNextMidnight(tc.now))
		})
	}
}

func TestNextMidnight_DST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2026-03-08 is 23 hours long in New York.
	start := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	next := NextMidnight(start)
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 9, next.Day())
	assert.Equal(t, 23*time.Hour, next.Sub(start))

	// 2026-11-01 is 25 hours long.
	start = time.Date(2026, 11, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, 25*time.Hour, UntilNextMidnight(start))
}

func TestStart_ArmsUntilNextMidnight(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	s, _, timers := newTestScheduler(now)
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Start(context.Background(), func(time.Time) {}))

	assert.Equal(t, StateArmed, s.State())
	assert.Equal(t, 6*time.Hour, timers.last(t).wait)
	next, ok := s.NextFire()
	require.True(t, ok)
	assert.True(t, next.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))

	assert.ErrorIs(t, s.Start(context.Background(), func(time.Time) {}), ErrAlreadyStarted)
	assert.Equal(t, 1, timers.count(), "a second Start must not arm another timer")
}

func TestStart_RequiresCallback(t *testing.T) {
	s, _, _ := newTestScheduler(time.Now())
	assert.Error(t, s.Start(context.Background(), nil))
	assert.Equal(t, StateIdle, s.State())
}

func TestFire_RenewsDailyWithoutDrift(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)

	var fired []time.Time
	require.NoError(t, s.Start(context.Background(), func(at time.Time) {
		fired = append(fired, at)
	}))

	prev, _ := s.NextFire()
	for day := 1; day <= 5; day++ {
		// Timers run a little late in practice.
		clock.Set(prev.Add(150 * time.Millisecond))
		timers.last(t).f()

		next, ok := s.NextFire()
		require.True(t, ok)
		assert.True(t, next.After(prev), "day %d: next fire %s must be after %s", day, next, prev)
		assert.True(t, next.Equal(prev.AddDate(0, 0, 1)), "day %d: next fire %s", day, next)
		assert.Equal(t, 0, next.Hour())
		assert.Equal(t, 24*time.Hour-150*time.Millisecond, timers.last(t).wait)
		prev = next
	}

	assert.Len(t, fired, 5)
	assert.Equal(t, 5, s.Fires())
	assert.Equal(t, 6, timers.count())
	assert.Equal(t, StateArmed, s.State())
}

func TestFire_EarlyWakeWaitsForSameMidnight(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)
	calls := 0
	require.NoError(t, s.Start(context.Background(), func(time.Time) { calls++ }))

	target, _ := s.NextFire()
	early := timers.last(t)
	clock.Set(target.Add(-time.Second))
	early.f()

	assert.Equal(t, 0, calls, "no rollover before midnight")
	next, ok := s.NextFire()
	require.True(t, ok)
	assert.True(t, next.Equal(target), "next fire %s", next)
	assert.Equal(t, time.Second, timers.last(t).wait)
	assert.Equal(t, 2, timers.count())

	early.f()
	assert.Equal(t, 0, calls, "replaced timer is stale")

	clock.Advance(time.Second)
	timers.last(t).f()

	assert.Equal(t, 1, calls)
	next, _ = s.NextFire()
	assert.True(t, next.Equal(target.AddDate(0, 0, 1)), "next fire %s", next)
	assert.Equal(t, 24*time.Hour, timers.last(t).wait)
}

func TestFire_MissedWakeRecomputesFromNow(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)
	require.NoError(t, s.Start(context.Background(), func(time.Time) {}))

	// Machine slept through several midnights.
	clock.Set(time.Date(2026, 10, 22, 7, 30, 0, 0, time.UTC))
	timers.last(t).f()

	next, _ := s.NextFire()
	assert.True(t, next.Equal(time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC)), "next fire %s", next)
	assert.Equal(t, 16*time.Hour+30*time.Minute, timers.last(t).wait)
}

func TestFire_StaleTimerIgnored(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)
	calls := 0
	require.NoError(t, s.Start(context.Background(), func(time.Time) { calls++ }))

	first := timers.last(t)
	clock.Set(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	first.f()
	first.f()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, timers.count())
}

func TestStop_CancelsPendingFire(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)
	calls := 0
	require.NoError(t, s.Start(context.Background(), func(time.Time) { calls++ }))

	pending := timers.last(t)
	s.Stop()
	s.Stop()

	assert.True(t, pending.stopped)
	assert.Equal(t, StateCancelled, s.State())
	_, ok := s.NextFire()
	assert.False(t, ok)

	clock.Set(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	pending.f()
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, timers.count())

	assert.ErrorIs(t, s.Start(context.Background(), func(time.Time) {}), ErrStopped)
}

func TestStop_DuringCallbackDoesNotRearm(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, clock, timers := newTestScheduler(start)
	require.NoError(t, s.Start(context.Background(), func(time.Time) { s.Stop() }))

	clock.Set(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	timers.last(t).f()

	assert.Equal(t, StateCancelled, s.State())
	assert.Equal(t, 1, timers.count())
}

func TestStart_ContextCancelStops(t *testing.T) {
	s, _, timers := newTestScheduler(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx, func(time.Time) {}))
	cancel()

	require.Eventually(t, func() bool { return s.State() == StateCancelled }, time.Second, 5*time.Millisecond)
	assert.True(t, timers.last(t).stopped)
}

// runningClock starts at a chosen instant and then moves with real time.
type runningClock struct {
	base    time.Time
	started time.Time
}

func (c runningClock) Now() time.Time { return c.base.Add(time.Since(c.started)) }

func TestScheduler_RealTimerFires(t *testing.T) {
	loc := time.FixedZone("test", 0)
	clock := runningClock{base: time.Date(2026, 10, 19, 23, 59, 59, int(950*time.Millisecond), loc), started: time.Now()}
	s := New(Options{Clock: clock, Logger: quietLogger()})
	defer s.Stop()

	fired := make(chan time.Time, 1)
	require.NoError(t, s.Start(context.Background(), func(at time.Time) { fired <- at }))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	require.Eventually(t, func() bool { return s.State() == StateArmed }, time.Second, 5*time.Millisecond)
	next, _ := s.NextFire()
	assert.True(t, next.Equal(time.Date(2026, 10, 21, 0, 0, 0, 0, loc)), "next fire %s", next)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "armed", StateArmed.String())
	assert.Equal(t, "fired", StateFired.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
	assert.Equal(t, "unknown", State(42).String())
}
