package timeutil

import (
	"math/rand"
	"sync"
	"time"
)

// Clock abstracts time for the breaker and cache TTL logic so tests can
// advance it by hand.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns the wall clock.
func Real() Clock { return realClock{} }

// Fake is a manually advanced clock.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(start time.Time) *Fake { return &Fake{now: start} }

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Jitter produces bounded random durations for request spreading.
type Jitter interface {
	Duration(max time.Duration) time.Duration
}

type randJitter struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewJitter seeds a jitter source. Seed 0 uses the current time.
func NewJitter(seed int64) Jitter {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randJitter{r: rand.New(rand.NewSource(seed))}
}

func (j *randJitter) Duration(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return time.Duration(j.r.Int63n(int64(max)))
}

// Zero is a Jitter that always returns 0, for deterministic tests.
type Zero struct{}

func (Zero) Duration(time.Duration) time.Duration { return 0 }
