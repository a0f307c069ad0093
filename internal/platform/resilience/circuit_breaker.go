package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker guards an outbound dependency. A streak of failures trips
// it open; once the cooldown passes it lets a bounded number of trial
// requests through and closes again only when all of them succeed.
type CircuitBreaker struct {
	mu sync.Mutex

	failLimit  int
	cooldown   time.Duration
	trialLimit int

	state       CircuitState
	failStreak  int
	trippedAt   time.Time
	trialActive int
	trialPassed int
	clock       func() time.Time
}

func NewCircuitBreaker(failLimit int, cooldown time.Duration, trialLimit int) *CircuitBreaker {
	if failLimit < 1 {
		failLimit = 1
	}
	if cooldown <= 0 {
		cooldown = 15 * time.Second
	}
	if trialLimit < 1 {
		trialLimit = 1
	}

	return &CircuitBreaker{
		failLimit:  failLimit,
		cooldown:   cooldown,
		trialLimit: trialLimit,
		state:      CircuitStateClosed,
		clock:      time.Now,
	}
}

// Allow reports whether a request may go out, reserving a trial slot while
// half-open.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.clock().Sub(b.trippedAt) < b.cooldown {
			return ErrCircuitOpen
		}
		b.enterTrial()
	}

	if b.state == CircuitStateHalfOpen {
		if b.trialActive >= b.trialLimit {
			return ErrCircuitOpen
		}
		b.trialActive++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failStreak = 0
	case CircuitStateHalfOpen:
		if b.trialActive > 0 {
			b.trialActive--
		}
		b.trialPassed++
		if b.trialPassed >= b.trialLimit && b.trialActive == 0 {
			b.reset()
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failStreak++
		if b.failStreak >= b.failLimit {
			b.trip()
		}
	case CircuitStateHalfOpen:
		if b.trialActive > 0 {
			b.trialActive--
		}
		b.trip()
	case CircuitStateOpen:
		b.trippedAt = b.clock()
	}
}

// State reports the effective state; an expired cooldown shows as half-open
// even before the next Allow call transitions it.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.clock().Sub(b.trippedAt) >= b.cooldown {
		return CircuitStateHalfOpen
	}

	return b.state
}

func (b *CircuitBreaker) reset() {
	b.state = CircuitStateClosed
	b.failStreak = 0
	b.trialActive = 0
	b.trialPassed = 0
	b.trippedAt = time.Time{}
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.trippedAt = b.clock()
	b.trialActive = 0
	b.trialPassed = 0
}

func (b *CircuitBreaker) enterTrial() {
	b.state = CircuitStateHalfOpen
	b.trialActive = 0
	b.trialPassed = 0
}
