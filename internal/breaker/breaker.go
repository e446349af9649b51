// Package breaker provides a circuit breaker for the external definition
// providers. Repeated upstream failures open the circuit so analysis-side
// lookups fail fast instead of piling up timeouts.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrOpen is returned when the circuit is open and calls are blocked.
var ErrOpen = errors.New("circuit breaker is open")

// State represents the breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config configures a breaker.
type Config struct {
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the consecutive-success count in half-open that closes it.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before probing again.
	Cooldown time.Duration
	// OnStateChange is an optional transition callback.
	OnStateChange func(from, to State)
}

// Breaker implements the circuit breaker pattern.
type Breaker struct {
	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	lastFailure time.Time
	cfg         Config
}

// New creates a breaker, filling zero config fields with sane defaults.
func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = time.Minute
	}
	return &Breaker{state: StateClosed, cfg: cfg}
}

// Execute runs fn under breaker protection. When the circuit is open the
// call is rejected with ErrOpen without invoking fn.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	if err := b.beforeCall(); err != nil {
		return err
	}
	err := fn()
	b.afterCall(err)
	return err
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if time.Since(b.lastFailure) < b.cfg.Cooldown {
			return fmt.Errorf("%w: retry after %v", ErrOpen, b.cfg.Cooldown-time.Since(b.lastFailure))
		}
		b.transition(StateHalfOpen)
	}
	return nil
}

func (b *Breaker) afterCall(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.lastFailure = time.Now()
		if b.state == StateHalfOpen || b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.transition(StateClosed)
		}
	}
}

func (b *Breaker) transition(next State) {
	if b.state == next {
		return
	}
	prev := b.state
	b.state = next
	b.failures = 0
	b.successes = 0
	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(prev, next)
	}
}
