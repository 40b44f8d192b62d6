// Package breaker builds the circuit breaker settings shared by the remote
// service clients (content lookup and speech synthesis).
package breaker

import (
	"fmt"
	"io"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// DefaultFailures is the number of consecutive failures that opens the circuit
	DefaultFailures = 5

	// DefaultCooldown is how long an open circuit rejects calls before probing again
	DefaultCooldown = 30 * time.Second
)

// Settings returns gobreaker settings that trip after the given number of
// consecutive failures. State changes are reported to log when it is not nil.
// A failures value of zero selects DefaultFailures.
func Settings(name string, failures uint32, log io.Writer) gobreaker.Settings {
	if failures == 0 {
		failures = DefaultFailures
	}

	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     DefaultCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if log != nil {
				fmt.Fprintf(log, "Circuit breaker %s: %s -> %s\n", name, from, to)
			}
		},
	}
}

// New creates a circuit breaker with Settings
func New(name string, failures uint32, log io.Writer) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(Settings(name, failures, log))
}
