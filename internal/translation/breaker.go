package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTranslator stops calling a failing backend after a number of
// consecutive failures. While open, calls fail immediately with
// gobreaker.ErrOpenState; after cooldown one trial call is let through.
type BreakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps next. maxFailures is the number of consecutive
// failures that opens the breaker.
func NewBreakerTranslator(next Translator, maxFailures uint32, cooldown time.Duration, onStateChange func(from, to string)) *BreakerTranslator {
	settings := gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	if onStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			onStateChange(from.String(), to.String())
		}
	}

	return &BreakerTranslator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped translator unless the breaker is open
func (b *BreakerTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, from, to)
	})
	if err != nil {
		return "", fmt.Errorf("translator breaker: %w", err)
	}
	return result.(string), nil
}

// State returns the breaker state name: closed, half-open or open
func (b *BreakerTranslator) State() string {
	return b.cb.State().String()
}
