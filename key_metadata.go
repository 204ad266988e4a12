package parquetcrypt

import (
	"github.com/google/uuid"
)

// RandomKeyID mints a unique key identifier for use with WithFooterKeyID or
// WithKeyID. Key management layers that wrap keys out-of-band label each
// wrapped key with such an identifier and resolve it back at read time.
func RandomKeyID() string {
	return uuid.New().String()
}
