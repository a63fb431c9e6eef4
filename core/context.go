package core

import (
	"context"
	"time"
)

// Context keys for run options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	clockKey          contextKey = "clock"
)

// withSuppressHeader sets whether headers should be suppressed in the context
func withSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withClock sets the time source used to stamp assessments
func withClock(ctx context.Context, now func() time.Time) context.Context {
	return context.WithValue(ctx, clockKey, now)
}

// clockFrom returns the time source from context
func clockFrom(ctx context.Context) func() time.Time {
	if now, ok := ctx.Value(clockKey).(func() time.Time); ok && now != nil {
		return now
	}
	return time.Now // default: wall clock
}
