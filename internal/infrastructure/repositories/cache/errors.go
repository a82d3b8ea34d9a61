package cache

import "errors"

var (
	// ErrKeyNotFound is returned when a key was never stored or was deleted
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrKeyExpired is returned when a key outlived its backend TTL
	ErrKeyExpired = errors.New("cache: key expired")
)

// IsMiss reports whether err means the key is simply not there
func IsMiss(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrKeyExpired)
}
