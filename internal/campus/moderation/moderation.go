// Package moderation screens user text for toxicity before it is stored.
//
// Filters fail open: when the scoring backend is unreachable, misconfigured
// or throttled, content is allowed and the cause is reported in Result.Err
// for logging and metrics only.
package moderation

import (
	"context"
	"errors"
)

// DefaultThreshold is the score at or above which text is treated as toxic.
const DefaultThreshold = 0.7

var (
	ErrNotConfigured = errors.New("moderation: api key not configured")
	ErrThrottled     = errors.New("moderation: local quota exceeded")
	ErrCircuitOpen   = errors.New("moderation: circuit open")
	ErrUpstream      = errors.New("moderation: upstream error")
)

// Result is the outcome of a toxicity check. Err is informational; a non-nil
// Err always comes with IsToxic=false.
type Result struct {
	IsToxic bool
	Score   float64
	Err     error
}

// Filter scores text for toxicity.
type Filter interface {
	Check(ctx context.Context, text string) Result
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(ctx context.Context, text string) Result

func (f FilterFunc) Check(ctx context.Context, text string) Result { return f(ctx, text) }

// Static returns a Filter that always reports the given score against
// threshold. Useful in tests and local development.
func Static(score, threshold float64) Filter {
	return FilterFunc(func(context.Context, string) Result {
		return Result{IsToxic: score >= threshold, Score: score}
	})
}
