package content

import (
	"context"
	"io"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/spellbee/internal/breaker"
)

// BreakerLookup wraps a lookup in a circuit breaker. It never retries: once
// the circuit is open, calls fail fast until the cool-down elapses.
type BreakerLookup struct {
	lookup Lookup
	cb     *gobreaker.CircuitBreaker
}

// NewBreakerLookup wraps lookup with a circuit breaker that opens after the
// given number of consecutive failures
func NewBreakerLookup(lookup Lookup, failures uint32, log io.Writer) *BreakerLookup {
	return &BreakerLookup{
		lookup: lookup,
		cb:     breaker.New("content-"+lookup.Name(), failures, log),
	}
}

// Lookup calls the wrapped lookup through the circuit breaker
func (l *BreakerLookup) Lookup(ctx context.Context, word string) (string, error) {
	result, err := l.cb.Execute(func() (interface{}, error) {
		return l.lookup.Lookup(ctx, word)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped lookup name
func (l *BreakerLookup) Name() string {
	return l.lookup.Name()
}
