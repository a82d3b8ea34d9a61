package middleware

import (
	"net/http"
	"strings"
	"time"

	"btc-price-client/internal/infrastructure/logging"
)

const maxRequestIDLength = 128

// ResponseWriter wrapper to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RequestTracingMiddleware adds request tracing and structured logging.
// An incoming X-Request-ID is propagated, otherwise a new one is generated.
func RequestTracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(logging.RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logging.GenerateRequestID()
		}

		startTime := time.Now()
		remoteIP := getRemoteIP(r)

		ctx := logging.WithRequestID(r.Context(), requestID)
		ctx = logging.WithStartTime(ctx, startTime)

		w.Header().Set(logging.RequestIDHeader, requestID)

		wrapped := &responseWriter{ResponseWriter: w}

		httpLogger := logging.HTTP()
		httpLogger.RequestReceived(ctx, r.Method, r.URL.Path, r.UserAgent(), remoteIP)

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		if wrapped.statusCode == 0 {
			wrapped.statusCode = http.StatusOK
		}
		httpLogger.RequestCompleted(ctx, r.Method, r.URL.Path, wrapped.statusCode, time.Since(startTime))
	})
}

// getRemoteIP extracts the real client IP from request
func getRemoteIP(r *http.Request) string {
	// X-Forwarded-For puede contener múltiples IPs, tomar la primera
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		if idx := strings.Index(xForwardedFor, ","); idx != -1 {
			return strings.TrimSpace(xForwardedFor[:idx])
		}
		return xForwardedFor
	}

	if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	return r.RemoteAddr
}
