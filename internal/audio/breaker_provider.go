package audio

import (
	"context"
	"io"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/spellbee/internal/breaker"
)

// BreakerProvider wraps a provider in a circuit breaker. It never retries:
// once the circuit is open, calls fail fast until the cool-down elapses.
type BreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps provider with a circuit breaker that opens after
// the given number of consecutive failures
func NewBreakerProvider(provider Provider, failures uint32, log io.Writer) *BreakerProvider {
	return &BreakerProvider{
		provider: provider,
		cb:       breaker.New("tts-"+provider.Name(), failures, log),
	}
}

// Synthesize calls the wrapped provider through the circuit breaker
func (p *BreakerProvider) Synthesize(ctx context.Context, text string) (*Clip, error) {
	result, err := p.cb.Execute(func() (interface{}, error) {
		return p.provider.Synthesize(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Clip), nil
}

// Name returns the wrapped provider name
func (p *BreakerProvider) Name() string {
	return p.provider.Name()
}

// IsAvailable reports the wrapped provider availability
func (p *BreakerProvider) IsAvailable() error {
	return p.provider.IsAvailable()
}
