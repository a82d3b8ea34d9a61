package logging

import (
	"context"
	"time"
)

// domainLogger escribe sobre el logger base agregando el campo domain
type domainLogger struct {
	base   Logger
	domain string
}

func (d domainLogger) emit(ctx context.Context, level LogLevel, message string, fb *FieldBuilder) {
	fields := fb.WithField(FieldDomain, d.domain).Build()

	switch level {
	case LevelDebug:
		d.base.Debug(ctx, message, fields)
	case LevelWarn:
		d.base.Warn(ctx, message, fields)
	case LevelError:
		d.base.Error(ctx, message, fields)
	default:
		d.base.Info(ctx, message, fields)
	}
}

// emitError only supports warn and error; anything else is logged as warn
func (d domainLogger) emitError(ctx context.Context, level LogLevel, message string, err error, fb *FieldBuilder) {
	fields := fb.WithField(FieldDomain, d.domain).Build()

	if level == LevelError {
		d.base.ErrorWithError(ctx, message, err, fields)
		return
	}
	d.base.WarnWithError(ctx, message, err, fields)
}

// levelForStatus maps an HTTP status to a log level
func levelForStatus(statusCode int) LogLevel {
	switch {
	case statusCode >= 500:
		return LevelError
	case statusCode >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

type httpLogger struct{ domainLogger }

// NewHTTPLogger creates the logger used by the request tracing middleware
func NewHTTPLogger(base Logger) HTTPLogger {
	return httpLogger{domainLogger{base: base, domain: "http"}}
}

func (l httpLogger) RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string) {
	l.emit(ctx, LevelDebug, "HTTP request received", NewFieldBuilder().
		WithRequest(method, path, 0).
		WithClient(userAgent, remoteIP))
}

func (l httpLogger) RequestCompleted(ctx context.Context, method, path string, statusCode int, elapsed time.Duration) {
	l.emit(ctx, levelForStatus(statusCode), "HTTP request completed", NewFieldBuilder().
		WithRequest(method, path, statusCode).
		WithDuration(elapsed))
}

type upstreamLogger struct{ domainLogger }

// NewUpstreamLogger creates the logger used by the CoinGecko client
func NewUpstreamLogger(base Logger) UpstreamLogger {
	return upstreamLogger{domainLogger{base: base, domain: "upstream"}}
}

func (l upstreamLogger) CallStarted(ctx context.Context, service, endpoint string) {
	l.emit(ctx, LevelDebug, "Upstream call started", NewFieldBuilder().
		WithUpstream(service, endpoint, 0))
}

func (l upstreamLogger) CallSucceeded(ctx context.Context, service, endpoint string, statusCode int, elapsed time.Duration) {
	l.emit(ctx, LevelInfo, "Upstream call succeeded", NewFieldBuilder().
		WithUpstream(service, endpoint, statusCode).
		WithDuration(elapsed))
}

func (l upstreamLogger) CallFailed(ctx context.Context, service, endpoint string, statusCode int, elapsed time.Duration, err error) {
	l.emitError(ctx, LevelWarn, "Upstream call failed", err, NewFieldBuilder().
		WithUpstream(service, endpoint, statusCode).
		WithDuration(elapsed))
}

type cacheLogger struct{ domainLogger }

// NewCacheLogger creates the logger used by the record cache
func NewCacheLogger(base Logger) CacheLogger {
	return cacheLogger{domainLogger{base: base, domain: "cache"}}
}

func (l cacheLogger) Hit(ctx context.Context, operation, key string) {
	l.emit(ctx, LevelDebug, "Cache hit", NewFieldBuilder().WithCacheOp(operation, key).WithHit(true))
}

func (l cacheLogger) Miss(ctx context.Context, operation, key string) {
	l.emit(ctx, LevelDebug, "Cache miss", NewFieldBuilder().WithCacheOp(operation, key).WithHit(false))
}

// Stale is a hit on an entry older than the freshness window
func (l cacheLogger) Stale(ctx context.Context, key string, age time.Duration) {
	l.emit(ctx, LevelDebug, "Cache entry stale", NewFieldBuilder().
		WithCacheOp(CacheOpGet, key).
		WithHit(true).
		WithAge(age))
}

func (l cacheLogger) Stored(ctx context.Context, key string) {
	l.emit(ctx, LevelDebug, "Cache entry stored", NewFieldBuilder().WithCacheOp(CacheOpSet, key))
}

func (l cacheLogger) Failed(ctx context.Context, operation, key string, err error) {
	l.emitError(ctx, LevelWarn, "Cache operation failed", err, NewFieldBuilder().WithCacheOp(operation, key))
}

type recordLogger struct{ domainLogger }

// NewRecordLogger creates the logger used by the price data client
func NewRecordLogger(base Logger) RecordLogger {
	return recordLogger{domainLogger{base: base, domain: "records"}}
}

func (l recordLogger) Requested(ctx context.Context, kind, currency string) {
	l.emit(ctx, LevelDebug, "Bitcoin data requested", NewFieldBuilder().WithRecord(kind, currency))
}

func (l recordLogger) Served(ctx context.Context, kind, currency, source string) {
	l.emit(ctx, LevelInfo, "Bitcoin data served", NewFieldBuilder().
		WithRecord(kind, currency).
		WithSource(source))
}

func (l recordLogger) FallbackActivated(ctx context.Context, kind, currency, reason string, err error) {
	l.emitError(ctx, LevelWarn, "Falling back from live data", err, NewFieldBuilder().
		WithRecord(kind, currency).
		WithFallback(reason))
}

func (l recordLogger) InvalidInput(ctx context.Context, input, reason string) {
	l.emit(ctx, LevelWarn, "Validation failed", NewFieldBuilder().
		WithField(FieldInput, input).
		WithField(FieldValidation, reason))
}
