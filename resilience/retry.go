package resilience

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrAttemptsExhausted wraps the last error once every attempt has failed.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Policy configures how an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, including the first.
	Attempts int
	// Initial is the delay after the first failure.
	Initial time.Duration
	// Max caps the delay between attempts.
	Max time.Duration
	// Factor multiplies the delay after each failure.
	Factor float64
	// Jitter spreads each delay by up to this fraction (0.0 to 1.0).
	Jitter float64
	// RetryIf reports whether err is worth another attempt.
	RetryIf func(err error) bool
	// OnRetry runs before waiting for the next attempt.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultPolicy returns the policy used for database connections.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: 3,
		Initial:  time.Second,
		Max:      10 * time.Second,
		Factor:   2.0,
		Jitter:   0.1,
		RetryIf:  Transient,
	}
}

// Transient retries everything except context cancellation and deadlines.
func Transient(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = def.Attempts
	}
	if p.Initial <= 0 {
		p.Initial = def.Initial
	}
	if p.Max <= 0 {
		p.Max = def.Max
	}
	if p.Max < p.Initial {
		p.Max = p.Initial
	}
	if p.Factor < 1 {
		p.Factor = def.Factor
	}
	if p.RetryIf == nil {
		p.RetryIf = def.RetryIf
	}
	return p
}

// Retry calls fn until it succeeds, returns an error RetryIf rejects, or the
// policy runs out of attempts. fn receives the 1-based attempt number.
func Retry[T any](ctx context.Context, p Policy, fn func(attempt int) (T, error)) (T, error) {
	var zero T
	p = p.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !p.RetryIf(err) {
			return zero, err
		}
		if attempt == p.Attempts {
			break
		}

		wait := p.Backoff(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, p.Attempts, lastErr)
}

// Do is Retry for operations without a result.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	_, err := Retry(ctx, p, func(attempt int) (struct{}, error) {
		return struct{}{}, fn(attempt)
	})
	return err
}

// Backoff returns the wait after the given failed attempt.
func (p Policy) Backoff(attempt int) time.Duration {
	p = p.withDefaults()
	d := float64(p.Initial) * math.Pow(p.Factor, float64(attempt-1))

	if p.Jitter > 0 {
		spread := d * p.Jitter
		d += (rand.Float64()*2 - 1) * spread
	}
	if d > float64(p.Max) {
		d = float64(p.Max)
	}
	if d <= 0 {
		d = float64(p.Initial)
	}
	return time.Duration(d)
}
