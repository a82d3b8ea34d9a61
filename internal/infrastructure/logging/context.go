package logging

import (
	"context"
	"time"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	startTimeKey
)

// WithRequestID tags ctx so every entry logged with it carries the id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the id set by WithRequestID, or ""
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

// WithStartTime marks when the request began; entries then report the
// elapsed time since
func WithStartTime(ctx context.Context, startTime time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey, startTime)
}

func GetStartTime(ctx context.Context) time.Time {
	startTime, _ := ctx.Value(startTimeKey).(time.Time)
	return startTime
}
