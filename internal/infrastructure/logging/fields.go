package logging

import "time"

// Fields son los campos estructurados de una entrada
type Fields map[string]interface{}

// LogLevel is the minimum severity that reaches the output
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Claves presentes en toda entrada
const (
	FieldTimestamp   = "timestamp"
	FieldMessage     = "message"
	FieldRequestID   = "request_id"
	FieldService     = "service"
	FieldVersion     = "version"
	FieldEnvironment = "environment"
	FieldDomain      = "domain"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldDuration    = "duration_ms"
)

// Requests entrantes
const (
	FieldHTTPMethod     = "http_method"
	FieldHTTPPath       = "http_path"
	FieldHTTPStatusCode = "http_status_code"
	FieldHTTPUserAgent  = "http_user_agent"
	FieldHTTPRemoteIP   = "http_remote_ip"
)

// Llamadas a la API de mercado
const (
	FieldUpstream           = "upstream"
	FieldUpstreamEndpoint   = "upstream_endpoint"
	FieldUpstreamStatusCode = "upstream_status_code"
)

// Cache de registros
const (
	FieldCacheOperation = "cache_operation"
	FieldCacheKey       = "cache_key"
	FieldCacheHit       = "cache_hit"
	FieldCacheAge       = "cache_age_ms"
	FieldCacheBackend   = "cache_backend"
)

// Registros servidos al llamador
const (
	FieldKind           = "kind"
	FieldCurrency       = "currency"
	FieldSource         = "source"
	FieldCached         = "cached"
	FieldFallbackReason = "fallback_reason"
	FieldValidation     = "validation"
	FieldInput          = "input"
)

// Cache operations as reported in FieldCacheOperation
const (
	CacheOpGet = "GET"
	CacheOpSet = "SET"
)

// servedFromCache reports whether a record source means the value came out
// of the record cache. Live and synthetic records never do.
func servedFromCache(source string) bool {
	return source == "cache" || source == "stale_cache"
}

// FieldBuilder arma los campos de una entrada de dominio
type FieldBuilder struct {
	fields Fields
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{fields: make(Fields)}
}

// WithDuration records elapsed as fractional milliseconds
func (fb *FieldBuilder) WithDuration(elapsed time.Duration) *FieldBuilder {
	fb.fields[FieldDuration] = float64(elapsed.Nanoseconds()) / 1e6
	return fb
}

// WithRequest describes an incoming HTTP request; a zero status is omitted
func (fb *FieldBuilder) WithRequest(method, path string, statusCode int) *FieldBuilder {
	fb.fields[FieldHTTPMethod] = method
	fb.fields[FieldHTTPPath] = path
	if statusCode != 0 {
		fb.fields[FieldHTTPStatusCode] = statusCode
	}
	return fb
}

// WithClient adds whatever is known about the caller
func (fb *FieldBuilder) WithClient(userAgent, remoteIP string) *FieldBuilder {
	if userAgent != "" {
		fb.fields[FieldHTTPUserAgent] = userAgent
	}
	if remoteIP != "" {
		fb.fields[FieldHTTPRemoteIP] = remoteIP
	}
	return fb
}

// WithUpstream names the upstream call. A zero status means no response
// was received and is left out.
func (fb *FieldBuilder) WithUpstream(service, endpoint string, statusCode int) *FieldBuilder {
	fb.fields[FieldUpstream] = service
	fb.fields[FieldUpstreamEndpoint] = endpoint
	if statusCode != 0 {
		fb.fields[FieldUpstreamStatusCode] = statusCode
	}
	return fb
}

func (fb *FieldBuilder) WithCacheOp(operation, key string) *FieldBuilder {
	fb.fields[FieldCacheOperation] = operation
	fb.fields[FieldCacheKey] = key
	return fb
}

func (fb *FieldBuilder) WithHit(hit bool) *FieldBuilder {
	fb.fields[FieldCacheHit] = hit
	return fb
}

// WithAge records how old a cache entry is, in whole milliseconds
func (fb *FieldBuilder) WithAge(age time.Duration) *FieldBuilder {
	fb.fields[FieldCacheAge] = age.Milliseconds()
	return fb
}

// WithRecord identifies the read: kind (price or market) and currency
func (fb *FieldBuilder) WithRecord(kind, currency string) *FieldBuilder {
	fb.fields[FieldKind] = kind
	fb.fields[FieldCurrency] = currency
	return fb
}

// WithSource records where a served value came from, and whether that
// was the record cache
func (fb *FieldBuilder) WithSource(source string) *FieldBuilder {
	fb.fields[FieldSource] = source
	fb.fields[FieldCached] = servedFromCache(source)
	return fb
}

// WithFallback records why the live value was abandoned
func (fb *FieldBuilder) WithFallback(reason string) *FieldBuilder {
	if reason != "" {
		fb.fields[FieldFallbackReason] = reason
	}
	return fb
}

// WithField sets an arbitrary key; empty keys and nil values are dropped
func (fb *FieldBuilder) WithField(key string, value interface{}) *FieldBuilder {
	if key != "" && value != nil {
		fb.fields[key] = value
	}
	return fb
}

// Build returns the collected fields, nil when there are none
func (fb *FieldBuilder) Build() Fields {
	if len(fb.fields) == 0 {
		return nil
	}
	return fb.fields
}
