package logging

import (
	"context"
	"fmt"
	"sync"
)

var (
	globalMu      sync.RWMutex
	globalLoggers *LoggerSet
)

// InitializeGlobalLoggers replaces the process-wide loggers. Until it is
// called, the package logs with DefaultConfig.
func InitializeGlobalLoggers(config *LoggerConfig) error {
	factory, err := NewLoggerFactory(config)
	if err != nil {
		return fmt.Errorf("initialize global loggers: %w", err)
	}

	globalMu.Lock()
	globalLoggers = factory.LoggerSet()
	globalMu.Unlock()
	return nil
}

func loggers() *LoggerSet {
	globalMu.RLock()
	set := globalLoggers
	globalMu.RUnlock()
	if set != nil {
		return set
	}

	// DefaultConfig siempre valida
	factory, _ := NewLoggerFactory(DefaultConfig())
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLoggers == nil {
		globalLoggers = factory.LoggerSet()
	}
	return globalLoggers
}

func Info(ctx context.Context, message string, fields Fields) {
	loggers().Base.Info(ctx, message, fields)
}

func Error(ctx context.Context, message string, fields Fields) {
	loggers().Base.Error(ctx, message, fields)
}

func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	loggers().Base.WarnWithError(ctx, message, err, fields)
}

func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	loggers().Base.ErrorWithError(ctx, message, err, fields)
}

// HTTP, Upstream, Cache and Records return the process-wide domain loggers
func HTTP() HTTPLogger { return loggers().HTTP }

func Upstream() UpstreamLogger { return loggers().Upstream }

func Cache() CacheLogger { return loggers().Cache }

func Records() RecordLogger { return loggers().Records }
