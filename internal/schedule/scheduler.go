package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrAlreadyStarted = errors.New("scheduler already started")
	ErrStopped        = errors.New("scheduler stopped")
)

type Options struct {
	// Clock supplies local wall-clock time. Defaults to RealClock.
	Clock Clock
	// AfterFunc arms timers. Defaults to time.AfterFunc.
	AfterFunc AfterFunc
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Scheduler fires once per local calendar day at midnight. After every
// fire it recomputes the wait from the clock, so sleeps, clock changes and
// DST never accumulate drift.
type Scheduler struct {
	clock  Clock
	after  AfterFunc
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	onFire func(firedAt time.Time)
	timer  Timer
	target time.Time
	gen    uint64
	fires  int
	done   chan struct{}
}

func New(opts Options) *Scheduler {
	s := &Scheduler{
		clock:  opts.Clock,
		after:  opts.AfterFunc,
		logger: opts.Logger,
		done:   make(chan struct{}),
	}
	if s.clock == nil {
		s.clock = RealClock{}
	}
	if s.after == nil {
		s.after = realAfterFunc
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Start arms the first midnight fire. onFire runs on the timer goroutine;
// the next midnight is armed once it returns. Cancelling ctx stops the
// scheduler. Start succeeds at most once.
func (s *Scheduler) Start(ctx context.Context, onFire func(firedAt time.Time)) error {
	if onFire == nil {
		return errors.New("onFire is required")
	}

	s.mu.Lock()
	switch s.state {
	case StateIdle:
	case StateCancelled:
		s.mu.Unlock()
		return ErrStopped
	default:
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.onFire = onFire
	s.armLocked()
	s.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				s.Stop()
			case <-s.done:
			}
		}()
	}
	return nil
}

// Stop cancels any pending fire. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCancelled {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StateCancelled
	s.gen++
	close(s.done)
	s.logger.Info("midnight scheduler stopped", "fires", s.fires)
}

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NextFire returns the armed target, if any.
func (s *Scheduler) NextFire() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateArmed {
		return time.Time{}, false
	}
	return s.target, true
}

func (s *Scheduler) Fires() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fires
}

// armLocked targets the next local midnight. A target is always strictly
// later than the previous one, so the same midnight never fires twice.
func (s *Scheduler) armLocked() {
	now := s.clock.Now()
	target, wait := NextMidnight(now), UntilNextMidnight(now)
	if !s.target.IsZero() && !target.After(s.target) {
		target = NextMidnight(s.target)
		wait = target.Sub(now)
	}
	s.armAtLocked(target, wait)
}

func (s *Scheduler) armAtLocked(target time.Time, wait time.Duration) {
	if wait < 0 {
		wait = 0
	}

	s.gen++
	gen := s.gen
	s.target = target
	s.state = StateArmed
	s.timer = s.after(wait, func() { s.fire(gen) })

	s.logger.Info("midnight rollover scheduled",
		"at", target.Format(time.RFC3339),
		"in_seconds", int64(wait.Round(time.Second)/time.Second),
	)
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if s.state != StateArmed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	// The wall clock went back after arming: wait for the same midnight.
	if now := s.clock.Now(); now.Before(s.target) {
		s.logger.Debug("midnight timer woke early", "target", s.target.Format(time.RFC3339), "now", now.Format(time.RFC3339))
		s.armAtLocked(s.target, s.target.Sub(now))
		s.mu.Unlock()
		return
	}
	s.state = StateFired
	s.fires++
	s.timer = nil
	onFire := s.onFire
	target := s.target
	s.mu.Unlock()

	firedAt := s.clock.Now()
	s.logger.Info("midnight rollover firing", "target", target.Format(time.RFC3339), "fired_at", firedAt.Format(time.RFC3339))
	onFire(firedAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCancelled {
		return
	}
	s.armLocked()
}
