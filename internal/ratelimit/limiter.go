// Package ratelimit shapes outbound request rate per source and sheds load
// after provider quota signals.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/timeutil"
)

// ErrCancelled is returned when the cancellation predicate fires while
// waiting for a slot or yielding.
var ErrCancelled = errors.New("ratelimit: cancelled")

// cancelPollInterval bounds how long a wait can run without checking the
// cancellation predicate.
const cancelPollInterval = 50 * time.Millisecond

// Limiter is a per-source sliding request window.
type Limiter struct {
	lim    *rate.Limiter
	jitter timeutil.Jitter
}

// NewLimiter allows perMinute requests with a burst of the same size, which
// keeps the first window non-blocking ("fast mode") and only sleeps to slot
// once the window is saturated.
func NewLimiter(perMinute int, jitter timeutil.Jitter) *Limiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if jitter == nil {
		jitter = timeutil.NewJitter(0)
	}
	return &Limiter{
		lim:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		jitter: jitter,
	}
}

// Wait reserves a request slot, sleeping only when the window is full.
// Returns promptly with ErrCancelled when the predicate fires.
func (l *Limiter) Wait(ctx context.Context, cancelled domain.CancelCheck) error {
	r := l.lim.Reserve()
	delay := r.Delay()
	if delay == 0 {
		return nil
	}
	if err := sleepCancellable(ctx, delay, cancelled); err != nil {
		r.Cancel()
		return err
	}
	return nil
}

// MicroYield pauses between in-flight calls: 120-200 ms base plus up to
// 120 ms jitter, spreading load while staying responsive to cancellation.
func (l *Limiter) MicroYield(ctx context.Context, cancelled domain.CancelCheck) error {
	base := 120*time.Millisecond + l.jitter.Duration(80*time.Millisecond)
	pause := base + l.jitter.Duration(120*time.Millisecond)
	return sleepCancellable(ctx, pause, cancelled)
}

func sleepCancellable(ctx context.Context, d time.Duration, cancelled domain.CancelCheck) error {
	deadline := time.Now().Add(d)
	for {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		if cancelled != nil && cancelled() {
			return ErrCancelled
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		if remaining > cancelPollInterval {
			remaining = cancelPollInterval
		}
		select {
		case <-ctx.Done():
			return ErrCancelled
		case <-time.After(remaining):
		}
	}
}

// Breaker holds one source's cooldown state. It is owned by its adapter:
// read and written by that adapter alone. Advisory, not a lock.
type Breaker struct {
	mu            sync.Mutex
	cooldownUntil time.Time
	clock         timeutil.Clock
}

func NewBreaker(clock timeutil.Clock) *Breaker {
	if clock == nil {
		clock = timeutil.Real()
	}
	return &Breaker{clock: clock}
}

// Trip advances the cooldown deadline after a quota signal. The deadline
// only moves forward.
func (b *Breaker) Trip(cooldown time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	until := b.clock.Now().Add(cooldown)
	if until.After(b.cooldownUntil) {
		b.cooldownUntil = until
	}
}

// Cooling reports whether the source should be skipped right now.
func (b *Breaker) Cooling() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clock.Now().Before(b.cooldownUntil)
}

// Remaining returns how long until the source may be queried again.
func (b *Breaker) Remaining() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.cooldownUntil.Sub(b.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}
