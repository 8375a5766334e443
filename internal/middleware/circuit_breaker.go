package middleware

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/steam-lens/profile-api/pkg/errors"

	"github.com/sirupsen/logrus"
)

// CircuitBreakerState represents the current state of the circuit breaker
type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker guards calls to an upstream dependency, refusing calls
// while the upstream is failing so a dead Steam API doesn't tie up
// request goroutines on timeouts
type CircuitBreaker struct {
	name              string
	logger            *logrus.Logger
	state             CircuitBreakerState
	failureCount      int
	successCount      int
	lastFailureTime   time.Time
	mu                sync.RWMutex
	maxFailures       int           // Open circuit after N failures
	resetTimeout      time.Duration // Wait before trying half-open
	halfOpenSuccesses int           // Required successes to close circuit
}

// NewCircuitBreaker creates a new circuit breaker for an upstream
func NewCircuitBreaker(name string, logger *logrus.Logger) *CircuitBreaker {
	return &CircuitBreaker{
		name:              name,
		logger:            logger,
		state:             StateClosed,
		maxFailures:       5,                // Open after 5 consecutive failures
		resetTimeout:      10 * time.Second, // Try half-open after 10s
		halfOpenSuccesses: 3,                // Need 3 successes to close
	}
}

// Execute runs an upstream call with circuit breaker protection
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	cb.mu.RLock()
	state := cb.state
	cb.mu.RUnlock()

	// If circuit is open, check if we should try half-open
	if state == StateOpen {
		cb.mu.Lock()
		if time.Since(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = StateHalfOpen
			cb.successCount = 0
			cb.logger.WithField("upstream", cb.name).Info("Circuit breaker: OPEN → HALF_OPEN (retry attempt)")
		} else {
			cb.mu.Unlock()
			return apperrors.NewAppErrorf(apperrors.CodeUpstreamUnavailable, nil,
				"circuit breaker is OPEN, refusing %s call", cb.name)
		}
		cb.mu.Unlock()
	}

	// Execute the upstream call
	err := fn()

	// Update circuit breaker state based on result
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure(err)
		return err
	}

	cb.onSuccess()
	return nil
}

// State returns the current breaker state
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// onFailure handles a failed upstream call
func (cb *CircuitBreaker) onFailure(err error) {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.maxFailures {
			cb.state = StateOpen
			cb.logger.WithFields(logrus.Fields{
				"upstream":      cb.name,
				"failure_count": cb.failureCount,
				"error":         err.Error(),
			}).Error("Circuit breaker: CLOSED → OPEN (upstream unhealthy)")
		}

	case StateHalfOpen:
		cb.state = StateOpen
		cb.failureCount = 0
		cb.logger.WithError(err).WithField("upstream", cb.name).
			Error("Circuit breaker: HALF_OPEN → OPEN (upstream still unhealthy)")
	}
}

// onSuccess handles a successful upstream call
func (cb *CircuitBreaker) onSuccess() {
	cb.successCount++

	switch cb.state {
	case StateClosed:
		// Reset failure count on success in closed state
		if cb.failureCount > 0 {
			cb.failureCount = 0
		}

	case StateHalfOpen:
		if cb.successCount >= cb.halfOpenSuccesses {
			cb.state = StateClosed
			cb.failureCount = 0
			cb.logger.WithField("upstream", cb.name).Info("Circuit breaker: HALF_OPEN → CLOSED (upstream recovered)")
		}
	}
}
