package breaker

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream failed")

func fail() error { return errUpstream }

func succeed() error { return nil }

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := New(Config{FailureThreshold: 3, Cooldown: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := b.Execute(ctx, fail); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d: expected the upstream error, got %v", i, err)
		}
	}
	if b.State() != StateOpen {
		t.Fatalf("expected open after 3 failures, got %s", b.State())
	}

	called := false
	err := b.Execute(ctx, func() error { called = true; return nil })
	if !errors.Is(err, ErrOpen) {
		t.Errorf("expected ErrOpen, got %v", err)
	}
	if called {
		t.Error("an open circuit must not invoke the call")
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := New(Config{FailureThreshold: 3})
	ctx := context.Background()

	b.Execute(ctx, fail)
	b.Execute(ctx, fail)
	b.Execute(ctx, succeed)
	b.Execute(ctx, fail)
	b.Execute(ctx, fail)

	if b.State() != StateClosed {
		t.Errorf("interleaved successes must keep the circuit closed, got %s", b.State())
	}
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	b.Execute(ctx, fail)
	if b.State() != StateOpen {
		t.Fatalf("expected open, got %s", b.State())
	}

	time.Sleep(20 * time.Millisecond)

	// First probe succeeds; the circuit stays half-open until the
	// success threshold is met.
	if err := b.Execute(ctx, succeed); err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if b.State() != StateHalfOpen {
		t.Errorf("expected half-open after one probe, got %s", b.State())
	}

	if err := b.Execute(ctx, succeed); err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if b.State() != StateClosed {
		t.Errorf("expected closed after two probes, got %s", b.State())
	}
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New(Config{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	b.Execute(ctx, fail)
	time.Sleep(20 * time.Millisecond)

	if err := b.Execute(ctx, fail); !errors.Is(err, errUpstream) {
		t.Fatalf("expected the upstream error, got %v", err)
	}
	if b.State() != StateOpen {
		t.Errorf("a failed probe must reopen the circuit, got %s", b.State())
	}
}

func TestBreakerStateChangeCallback(t *testing.T) {
	var transitions []string
	b := New(Config{
		FailureThreshold: 1,
		Cooldown:         time.Hour,
		OnStateChange: func(from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	b.Execute(context.Background(), fail)

	if len(transitions) != 1 || transitions[0] != "closed->open" {
		t.Errorf("expected a closed->open transition, got %v", transitions)
	}
}
