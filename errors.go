package parquetcrypt

import (
	"errors"
	"fmt"
)

// All errors in this package are configuration errors: they are raised while
// a builder is staging options or at Build time, never during writing. Every
// one of them is a permanent caller-side misuse, not a transient condition.

// ConfigError represents an encryption configuration or parameter error
type ConfigError struct {
	Setting string // The builder setting or parameter at fault
	Value   any    // The invalid value, if applicable
	Message string // Human-readable error message
	Err     error  // Underlying sentinel, if any
}

func (e *ConfigError) Error() string {
	if e.Setting != "" {
		return fmt.Sprintf("encryption config error: %s: %s", e.Setting, e.Message)
	}
	return fmt.Sprintf("encryption config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Sentinel errors, one per misuse category
var (
	// ErrKeyLength indicates a footer or column key that is not 16, 24 or 32 bytes
	ErrKeyLength = errors.New("wrong encryption key length")

	// ErrNoFooterKey indicates a missing footer key
	ErrNoFooterKey = errors.New("footer key is missing")

	// ErrAlreadySet indicates a mutually-exclusive builder option set twice
	ErrAlreadySet = errors.New("option already set")

	// ErrAadPrefixNotSet indicates an AAD prefix storage decision made before
	// any prefix was supplied
	ErrAadPrefixNotSet = errors.New("AAD prefix not yet set")

	// ErrColumnReused indicates column encryption properties bound to a
	// second file without an intervening deep clone
	ErrColumnReused = errors.New("column properties re-used in another file")

	// ErrNoEncryptedColumns indicates an explicitly supplied but empty column map
	ErrNoEncryptedColumns = errors.New("no encrypted columns")

	// ErrBadOrdinal indicates an AAD module ordinal outside the encodable range
	ErrBadOrdinal = errors.New("module ordinal out of range")
)

// Helper constructors for structured errors

// NewConfigError creates a new configuration error wrapping a sentinel
func NewConfigError(setting string, value any, message string, sentinel error) error {
	return &ConfigError{
		Setting: setting,
		Value:   value,
		Message: message,
		Err:     sentinel,
	}
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
