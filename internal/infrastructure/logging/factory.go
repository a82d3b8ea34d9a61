package logging

import "fmt"

// LoggerFactory builds the domain loggers over one structured logger
type LoggerFactory struct {
	base Logger
}

// NewLoggerFactory crea el logger base a partir de config (nil usa DefaultConfig)
func NewLoggerFactory(config *LoggerConfig) (*LoggerFactory, error) {
	base, err := NewStructuredLogger(config)
	if err != nil {
		return nil, fmt.Errorf("create base logger: %w", err)
	}
	return &LoggerFactory{base: base}, nil
}

// LoggerSet groups the base logger with one logger per domain
type LoggerSet struct {
	Base     Logger
	HTTP     HTTPLogger
	Upstream UpstreamLogger
	Cache    CacheLogger
	Records  RecordLogger
}

// LoggerSet returns domain loggers sharing the factory's base logger
func (f *LoggerFactory) LoggerSet() *LoggerSet {
	return &LoggerSet{
		Base:     f.base,
		HTTP:     NewHTTPLogger(f.base),
		Upstream: NewUpstreamLogger(f.base),
		Cache:    NewCacheLogger(f.base),
		Records:  NewRecordLogger(f.base),
	}
}
