package parquetcrypt

import (
	"fmt"
)

// Input validation helpers shared by the file and column builders

// ValidateKeyLength checks that an encryption key is a legal AES key size.
// A nil key is accepted here; callers that require a key check separately.
func ValidateKeyLength(key []byte, setting string) error {
	if key == nil {
		return nil
	}
	switch len(key) {
	case KeyLength128, KeyLength192, KeyLength256:
		return nil
	}
	return NewConfigError(setting, len(key),
		fmt.Sprintf("wrong key length %d: must be 16, 24 or 32 bytes", len(key)),
		ErrKeyLength)
}

// validateOrdinal checks that an AAD module ordinal fits the 2-byte
// little-endian encoding used in module AADs.
func validateOrdinal(ordinal int, what string) error {
	if ordinal < 0 {
		return NewConfigError(what, ordinal, "ordinal cannot be negative", ErrBadOrdinal)
	}
	if ordinal > maxModuleOrdinal {
		return NewConfigError(what, ordinal,
			fmt.Sprintf("encrypted files can't have more than %d %ss", maxModuleOrdinal, what),
			ErrBadOrdinal)
	}
	return nil
}

// copyBytes returns an independently owned copy of b, or nil for a nil input.
// Builders use it so later mutation of a caller's buffer cannot reach staged
// configuration, and so wiping configuration keys cannot reach caller memory.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// wipeBytes overwrites b with zeros in place
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
