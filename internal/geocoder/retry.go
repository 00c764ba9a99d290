package geocoder

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrRetriesExhausted marks an operation that kept failing with retryable
// errors until the attempt budget ran out.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Policy is a bounded-retry policy. Zero-value fields fall back to three
// attempts, a 4^attempt-seconds backoff, retry-everything, and time.Sleep.
type Policy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Retryable   func(err error) bool
	Sleep       func(d time.Duration)
}

// ExponentialBackoff waits 4^attempt seconds: 1s, 4s, 16s, ...
func ExponentialBackoff(attempt int) time.Duration {
	d := time.Second
	for i := 0; i < attempt; i++ {
		d *= 4
	}
	return d
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempt budget is exhausted. It sleeps between attempts, not after the
// last one. Non-retryable errors are returned as-is; exhaustion returns an
// error wrapping ErrRetriesExhausted.
func (p Policy) Do(op string, fn func() error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	backoff := p.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = func(error) bool { return true }
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt < maxAttempts-1 {
			wait := backoff(attempt)
			log.Warn().Err(err).Str("op", op).Dur("retry_in", wait).Msg("retrying after failure")
			sleep(wait)
		}
	}
	log.Error().Err(err).Str("op", op).Int("attempts", maxAttempts).Msg("giving up after repeated failures")
	return fmt.Errorf("%s: %w after %d attempts: %v", op, ErrRetriesExhausted, maxAttempts, err)
}
