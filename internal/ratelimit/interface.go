package ratelimit

import (
	"context"
	"time"
)

// DefaultMaxPerDay is the daily submission cap per client.
const DefaultMaxPerDay = 5

// Result is the outcome of one check-and-record call. Count is the counter
// value after this call recorded the attempt.
type Result struct {
	Allowed   bool
	Count     int
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter checks whether a submission from the given key is allowed right
// now and records the attempt in the same operation. An error means the
// limiter state could not be read or written; callers must treat that as a
// denial (fail closed), not as an allowance.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)

	Limit() int
}
