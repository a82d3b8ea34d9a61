package coingecko

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a live fetch did not produce data
type FailureKind string

const (
	// KindTransport covers DNS, connection and timeout failures
	KindTransport FailureKind = "transport"
	// KindStatus is a non-2xx HTTP response
	KindStatus FailureKind = "status"
	// KindInvalidResponse is a body that is not JSON or lacks the expected field
	KindInvalidResponse FailureKind = "invalid_response"
)

// Sentinels matched by errors.Is against a *FetchError of the same kind
var (
	ErrTransport       = errors.New("coingecko: transport failure")
	ErrHTTPStatus      = errors.New("coingecko: unexpected http status")
	ErrInvalidResponse = errors.New("coingecko: invalid response")
)

// FetchError is the tagged error returned by every Client call
type FetchError struct {
	Kind       FailureKind
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("coingecko %s: http status %d", e.Endpoint, e.StatusCode)
	default:
		if e.Err == nil {
			return fmt.Sprintf("coingecko %s: %s", e.Endpoint, e.Kind)
		}
		return fmt.Sprintf("coingecko %s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) and friends work
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTPStatus:
		return e.Kind == KindStatus
	case ErrInvalidResponse:
		return e.Kind == KindInvalidResponse
	}
	return false
}

// ErrorType is picked up by the structured logger as error_type
func (e *FetchError) ErrorType() string {
	return string(e.Kind)
}

// KindOf returns the failure kind of err, or "" when err is not a *FetchError
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
