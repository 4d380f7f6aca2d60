package rynko

import (
	"math/rand"
	"strconv"
	"time"
)

// retryDecision is the outcome of consulting the retry policy for one
// failed attempt.
type retryDecision struct {
	retry bool
	delay time.Duration
}

// retryPolicy decides whether a failed attempt should be retried and how
// long to wait before the next one. It performs no I/O and never sleeps;
// the executor owns the actual suspension.
type retryPolicy struct {
	enabled      bool
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	maxJitter    time.Duration
	statuses     map[int]struct{}
}

func newRetryPolicy(cfg Config) retryPolicy {
	statuses := make(map[int]struct{}, len(cfg.RetryableStatuses))
	for _, s := range cfg.RetryableStatuses {
		statuses[s] = struct{}{}
	}
	return retryPolicy{
		enabled:      !cfg.DisableRetry,
		maxRetries:   cfg.MaxRetries,
		initialDelay: cfg.InitialDelay,
		maxDelay:     cfg.MaxDelay,
		maxJitter:    cfg.MaxJitter,
		statuses:     statuses,
	}
}

// maxAttempts is the attempt bound for one executor invocation. A client
// with retry disabled is the one-attempt degenerate case of the same loop.
func (p retryPolicy) maxAttempts() int {
	if !p.enabled {
		return 1
	}
	return p.maxRetries
}

// decide reports whether the given status code on the given 0-based
// attempt should be retried, and with what delay. retryAfter is the raw
// Retry-After header value, if any.
func (p retryPolicy) decide(statusCode, attempt int, retryAfter string) retryDecision {
	if !p.enabled {
		return retryDecision{}
	}
	if _, ok := p.statuses[statusCode]; !ok {
		return retryDecision{}
	}
	if attempt >= p.maxAttempts()-1 {
		return retryDecision{}
	}
	return retryDecision{retry: true, delay: p.delayFor(attempt, parseRetryAfter(retryAfter))}
}

// delayFor computes the backoff delay for the given 0-based attempt. A
// server-supplied hint takes precedence over the exponential schedule;
// both get jitter to avoid synchronized retry storms, and both are capped
// at maxDelay.
func (p retryPolicy) delayFor(attempt int, hint time.Duration) time.Duration {
	jitter := time.Duration(0)
	if p.maxJitter > 0 {
		jitter = time.Duration(rand.Int63n(int64(p.maxJitter)))
	}

	delay := hint
	if delay <= 0 {
		// Exponential backoff: initialDelay * 2^attempt.
		delay = p.initialDelay << uint(attempt)
		if delay < p.initialDelay {
			// Shift overflowed.
			delay = p.maxDelay
		}
	}

	delay += jitter
	if delay > p.maxDelay {
		delay = p.maxDelay
	}
	return delay
}

// parseRetryAfter parses a Retry-After header in its integer-seconds form.
// The HTTP-date form is intentionally not supported and treated as absent,
// falling back to exponential backoff.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
