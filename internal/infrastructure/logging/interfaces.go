package logging

import (
	"context"
	"time"
)

// Logger is the structured logger every domain logger writes through
type Logger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)

	// el error se agrega como error y error_type
	WarnWithError(ctx context.Context, message string, err error, fields Fields)
	ErrorWithError(ctx context.Context, message string, err error, fields Fields)

	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

// HTTPLogger traces requests served by the HTTP surface
type HTTPLogger interface {
	RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string)
	RequestCompleted(ctx context.Context, method, path string, statusCode int, elapsed time.Duration)
}

// UpstreamLogger traces calls made to the market data API.
// A failed call is not an error for the caller, who still gets a fallback.
type UpstreamLogger interface {
	CallStarted(ctx context.Context, service, endpoint string)
	CallSucceeded(ctx context.Context, service, endpoint string, statusCode int, elapsed time.Duration)
	CallFailed(ctx context.Context, service, endpoint string, statusCode int, elapsed time.Duration, err error)
}

// CacheLogger traces lookups and writes of the record cache
type CacheLogger interface {
	Hit(ctx context.Context, operation, key string)
	Miss(ctx context.Context, operation, key string)
	Stale(ctx context.Context, key string, age time.Duration)
	Stored(ctx context.Context, key string)
	Failed(ctx context.Context, operation, key string, err error)
}

// RecordLogger traces how each price or market read was answered
type RecordLogger interface {
	Requested(ctx context.Context, kind, currency string)
	Served(ctx context.Context, kind, currency, source string)
	FallbackActivated(ctx context.Context, kind, currency, reason string, err error)
	InvalidInput(ctx context.Context, input, reason string)
}
