package parquetcrypt

// ColumnEncryptionProperties is the encryption policy of a single column:
// whether the column is encrypted, and with which key. An instance can be
// bound to (used for writing) only one file; write a second file from a
// DeepClone.
type ColumnEncryptionProperties struct {
	columnPath             string
	encrypted              bool
	encryptedWithFooterKey bool
	key                    []byte
	keyMetadata            []byte
	utilized               bool
}

// ColumnBuilder stages the encryption policy of one column. Setters validate
// eagerly and record the first failure; Build surfaces it.
type ColumnBuilder struct {
	columnPath  string
	encrypted   bool
	key         []byte
	keyMetadata []byte
	err         error
}

// NewColumnBuilder creates a builder for the encryption policy of the column
// at the given dot-separated path. If encrypt is false the column is written
// in plaintext and no key material may be supplied.
func NewColumnBuilder(columnPath string, encrypt bool) *ColumnBuilder {
	b := &ColumnBuilder{
		columnPath: columnPath,
		encrypted:  encrypt,
	}
	if columnPath == "" {
		b.err = NewConfigError("column path", nil, "column path cannot be empty", nil)
	}
	return b
}

// WithKey sets a column-specific encryption key. If not called on an
// encrypted column, the column is encrypted with the footer key.
// The key is copied; the caller keeps ownership of its buffer.
func (b *ColumnBuilder) WithKey(key []byte) *ColumnBuilder {
	if b.err != nil || key == nil {
		return b
	}
	if b.key != nil {
		b.err = NewConfigError("column key", b.columnPath, "column key already set", ErrAlreadySet)
		return b
	}
	if err := ValidateKeyLength(key, "column key"); err != nil {
		b.err = err
		return b
	}
	b.key = copyBytes(key)
	return b
}

// WithKeyID sets a key retrieval identifier, converted to UTF-8 metadata.
// Use either WithKeyID or WithKeyMetadata, not both.
func (b *ColumnBuilder) WithKeyID(keyID string) *ColumnBuilder {
	if keyID == "" {
		return b
	}
	return b.WithKeyMetadata([]byte(keyID))
}

// WithKeyMetadata sets opaque key retrieval metadata.
// Use either WithKeyID or WithKeyMetadata, not both.
func (b *ColumnBuilder) WithKeyMetadata(keyMetadata []byte) *ColumnBuilder {
	if b.err != nil || keyMetadata == nil {
		return b
	}
	if b.keyMetadata != nil {
		b.err = NewConfigError("column key metadata", b.columnPath, "column key metadata already set", ErrAlreadySet)
		return b
	}
	b.keyMetadata = copyBytes(keyMetadata)
	return b
}

// Build validates the staged policy and produces the column properties
func (b *ColumnBuilder) Build() (*ColumnEncryptionProperties, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.encrypted {
		if b.key != nil {
			return nil, NewConfigError("column key", b.columnPath, "setting key on plaintext column", nil)
		}
		if b.keyMetadata != nil {
			return nil, NewConfigError("column key metadata", b.columnPath, "setting key metadata on plaintext column", nil)
		}
	}
	withFooterKey := b.encrypted && b.key == nil
	if withFooterKey && b.keyMetadata != nil {
		return nil, NewConfigError("column key metadata", b.columnPath,
			"setting key metadata on column encrypted with footer key", nil)
	}

	return &ColumnEncryptionProperties{
		columnPath:             b.columnPath,
		encrypted:              b.encrypted,
		encryptedWithFooterKey: withFooterKey,
		key:                    copyBytes(b.key),
		keyMetadata:            copyBytes(b.keyMetadata),
	}, nil
}

// Path returns the dot-separated column path
func (c *ColumnEncryptionProperties) Path() string {
	return c.columnPath
}

// IsEncrypted reports whether the column is encrypted at all
func (c *ColumnEncryptionProperties) IsEncrypted() bool {
	return c.encrypted
}

// IsEncryptedWithFooterKey reports whether the column uses the file footer
// key instead of a column-specific key
func (c *ColumnEncryptionProperties) IsEncryptedWithFooterKey() bool {
	return c.encryptedWithFooterKey
}

// Key returns the column key bytes, or nil when the column is plaintext or
// uses the footer key. The returned slice is the live buffer: after WipeKey
// it reads as zeros.
func (c *ColumnEncryptionProperties) Key() []byte {
	return c.key
}

// KeyMetadata returns the opaque key retrieval metadata, if any
func (c *ColumnEncryptionProperties) KeyMetadata() []byte {
	return c.keyMetadata
}

// IsUtilized reports whether these properties are already bound to a file
func (c *ColumnEncryptionProperties) IsUtilized() bool {
	return c.utilized
}

// markUtilized binds the properties to a file. Called when a file builder
// accepts the column map.
func (c *ColumnEncryptionProperties) markUtilized() {
	c.utilized = true
}

// WipeKey overwrites the column key with zeros. Safe to call on columns
// without their own key.
func (c *ColumnEncryptionProperties) WipeKey() {
	wipeBytes(c.key)
}

// DeepClone returns an independent, unbound copy with its own key buffer,
// suitable for encrypting a column of another file with the same policy.
func (c *ColumnEncryptionProperties) DeepClone() *ColumnEncryptionProperties {
	return &ColumnEncryptionProperties{
		columnPath:             c.columnPath,
		encrypted:              c.encrypted,
		encryptedWithFooterKey: c.encryptedWithFooterKey,
		key:                    copyBytes(c.key),
		keyMetadata:            copyBytes(c.keyMetadata),
	}
}
