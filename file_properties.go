package parquetcrypt

import (
	"crypto/rand"
	"fmt"
)

const (
	// DefaultCipher is used when a builder does not select an algorithm
	DefaultCipher = AesGcmV1

	// DefaultEncryptedFooter is the footer mode used when a builder does not
	// request a plaintext footer
	DefaultEncryptedFooter = true
)

// FileEncryptionProperties is the validated encryption policy of one file:
// cipher, footer mode, footer key, AAD material and per-column overrides.
// It is immutable except for the utilized flag and the terminal key wipe.
//
// An instance can be used for writing only one file. Upon completion of the
// write, the writer wipes the keys; encrypting another file with the same
// policy requires DeepClone, which generates fresh per-file AAD material.
type FileEncryptionProperties struct {
	cipher               ParquetCipher
	algorithm            EncryptionAlgorithm
	encryptedFooter      bool
	footerKey            []byte
	footerKeyMetadata    []byte
	aadPrefix            []byte
	storeAadPrefixInFile bool
	fileAAD              []byte
	columnProperties     map[string]*ColumnEncryptionProperties
	utilized             bool
}

// Builder stages and validates the encryption policy of one file. Setters
// validate eagerly and record the first failure; Build surfaces it. A builder
// may be reused: every Build produces an independent instance with fresh
// per-file AAD material.
type Builder struct {
	footerKey            []byte
	encryptedFooter      bool
	cipher               ParquetCipher
	footerKeyMetadata    []byte
	aadPrefix            []byte
	storeAadPrefixInFile bool
	columnProperties     map[string]*ColumnEncryptionProperties
	err                  error
}

// NewBuilder creates a file encryption properties builder. The footer key
// encrypts the footer and every column without its own key; it must be 16,
// 24 or 32 bytes. The key is copied; the caller keeps ownership of (and is
// responsible for wiping) its own buffer.
func NewBuilder(footerKey []byte) *Builder {
	return &Builder{
		footerKey:       copyBytes(footerKey),
		cipher:          DefaultCipher,
		encryptedFooter: DefaultEncryptedFooter,
	}
}

// WithPlaintextFooter requests files with a plaintext footer. Only the
// declared columns are encrypted then; the footer carries their metadata in
// clear together with a signature.
func (b *Builder) WithPlaintextFooter() *Builder {
	b.encryptedFooter = false
	return b
}

// WithAlgorithm overrides the encryption algorithm. If not called, files are
// encrypted with AES_GCM_V1.
func (b *Builder) WithAlgorithm(cipher ParquetCipher) *Builder {
	b.cipher = cipher
	return b
}

// WithFooterKeyID sets a footer key retrieval identifier, converted to UTF-8
// metadata. Use either WithFooterKeyID or WithFooterKeyMetadata, not both.
func (b *Builder) WithFooterKeyID(keyID string) *Builder {
	if keyID == "" {
		return b
	}
	return b.WithFooterKeyMetadata([]byte(keyID))
}

// WithFooterKeyMetadata sets opaque footer key retrieval metadata, stored in
// the file for out-of-band key lookup at read time.
// Use either WithFooterKeyID or WithFooterKeyMetadata, not both.
func (b *Builder) WithFooterKeyMetadata(footerKeyMetadata []byte) *Builder {
	if b.err != nil || footerKeyMetadata == nil {
		return b
	}
	if b.footerKeyMetadata != nil {
		b.err = NewConfigError("footer key metadata", nil, "footer key metadata already set", ErrAlreadySet)
		return b
	}
	b.footerKeyMetadata = copyBytes(footerKeyMetadata)
	return b
}

// WithAADPrefix sets the file AAD prefix: a caller-chosen identifier of the
// file or dataset, mixed into every AAD in the file to defend against
// file-swapping attacks. By default the prefix is stored in the file
// metadata; see WithoutAADPrefixStorage.
func (b *Builder) WithAADPrefix(aadPrefix []byte) *Builder {
	if b.err != nil || aadPrefix == nil {
		return b
	}
	if b.aadPrefix != nil {
		b.err = NewConfigError("AAD prefix", nil, "AAD prefix already set", ErrAlreadySet)
		return b
	}
	b.aadPrefix = copyBytes(aadPrefix)
	b.storeAadPrefixInFile = true
	return b
}

// WithoutAADPrefixStorage skips storing the AAD prefix in the file. Readers
// must then supply the prefix out-of-band. Valid only after WithAADPrefix.
func (b *Builder) WithoutAADPrefixStorage() *Builder {
	if b.err != nil {
		return b
	}
	if b.aadPrefix == nil {
		b.err = NewConfigError("AAD prefix storage", nil, "AAD prefix not yet set", ErrAadPrefixNotSet)
		return b
	}
	b.storeAadPrefixInFile = false
	return b
}

// WithEncryptedColumns sets the columns to encrypt and their per-column
// policies. If not called, all columns are encrypted with the footer key.
// If called, file columns not in the map are written in plaintext.
//
// Each ColumnEncryptionProperties value is bound to this builder's file;
// properties already bound to another file are rejected. The map itself is
// copied, so later caller mutation does not reach the built configuration.
func (b *Builder) WithEncryptedColumns(encryptedColumns map[string]*ColumnEncryptionProperties) *Builder {
	if b.err != nil || encryptedColumns == nil {
		return b
	}
	if b.columnProperties != nil {
		b.err = NewConfigError("encrypted columns", nil, "column properties already set", ErrAlreadySet)
		return b
	}
	for path, col := range encryptedColumns {
		if col.IsUtilized() {
			b.err = NewConfigError("encrypted columns", path,
				"column properties re-used in another file", ErrColumnReused)
			return b
		}
	}
	columns := make(map[string]*ColumnEncryptionProperties, len(encryptedColumns))
	for path, col := range encryptedColumns {
		col.markUtilized()
		columns[path] = col
	}
	b.columnProperties = columns
	return b
}

// Build validates the staged policy and produces the file encryption
// properties, generating the fresh random per-file AAD component.
func (b *Builder) Build() (*FileEncryptionProperties, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newFileEncryptionProperties(b.cipher, b.footerKey, b.footerKeyMetadata,
		b.encryptedFooter, b.aadPrefix, b.storeAadPrefixInFile, b.columnProperties)
}

// newFileEncryptionProperties runs the construction-time validation shared by
// Build and DeepClone, and generates the per-file AAD material.
func newFileEncryptionProperties(cipher ParquetCipher,
	footerKey, footerKeyMetadata []byte, encryptedFooter bool,
	aadPrefix []byte, storeAadPrefixInFile bool,
	columnProperties map[string]*ColumnEncryptionProperties) (*FileEncryptionProperties, error) {

	if footerKey == nil {
		return nil, NewConfigError("footer key", nil, "footer key is missing", ErrNoFooterKey)
	}
	if err := ValidateKeyLength(footerKey, "footer key"); err != nil {
		return nil, err
	}
	if columnProperties != nil && len(columnProperties) == 0 {
		return nil, NewConfigError("encrypted columns", nil, "no encrypted columns", ErrNoEncryptedColumns)
	}

	aadFileUnique := make([]byte, AADFileUniqueLength)
	if _, err := rand.Read(aadFileUnique); err != nil {
		return nil, fmt.Errorf("failed to generate AAD file unique: %w", err)
	}

	var fileAAD []byte
	supplyAadPrefix := false
	if aadPrefix == nil {
		fileAAD = aadFileUnique
	} else {
		fileAAD = concatAAD(aadPrefix, aadFileUnique)
		supplyAadPrefix = !storeAadPrefixInFile
	}

	var storedPrefix []byte
	if aadPrefix != nil && storeAadPrefixInFile {
		storedPrefix = copyBytes(aadPrefix)
	}

	var algorithm EncryptionAlgorithm
	switch cipher {
	case AesGcmCtrV1:
		algorithm.GcmCtrV1 = &AesGcmCtrV1Algorithm{
			AadPrefix:       storedPrefix,
			AadFileUnique:   aadFileUnique,
			SupplyAadPrefix: supplyAadPrefix,
		}
	default:
		algorithm.GcmV1 = &AesGcmV1Algorithm{
			AadPrefix:       storedPrefix,
			AadFileUnique:   aadFileUnique,
			SupplyAadPrefix: supplyAadPrefix,
		}
	}

	return &FileEncryptionProperties{
		cipher:               cipher,
		algorithm:            algorithm,
		encryptedFooter:      encryptedFooter,
		footerKey:            copyBytes(footerKey),
		footerKeyMetadata:    copyBytes(footerKeyMetadata),
		aadPrefix:            copyBytes(aadPrefix),
		storeAadPrefixInFile: storeAadPrefixInFile,
		fileAAD:              fileAAD,
		columnProperties:     columnProperties,
	}, nil
}

// Algorithm returns the algorithm metadata record to embed in the file footer
func (f *FileEncryptionProperties) Algorithm() EncryptionAlgorithm {
	return f.algorithm
}

// FooterKey returns the footer key bytes. The returned slice is the live
// buffer: after WipeOutEncryptionKeys it reads as zeros of the original
// length, not as an error.
func (f *FileEncryptionProperties) FooterKey() []byte {
	return f.footerKey
}

// FooterKeyMetadata returns the opaque footer key retrieval metadata, if any
func (f *FileEncryptionProperties) FooterKeyMetadata() []byte {
	return f.footerKeyMetadata
}

// EncryptedFooter reports whether the file footer is encrypted
func (f *FileEncryptionProperties) EncryptedFooter() bool {
	return f.encryptedFooter
}

// FileAAD returns the file-level AAD seed every module AAD is derived from:
// the AAD prefix (when set) followed by the random per-file component.
func (f *FileEncryptionProperties) FileAAD() []byte {
	return f.fileAAD
}

// EncryptedColumns returns the configured per-column policies, or nil when
// every column is encrypted with the footer key. Callers must not modify the
// returned map.
func (f *FileEncryptionProperties) EncryptedColumns() map[string]*ColumnEncryptionProperties {
	return f.columnProperties
}

// ColumnProperties resolves the effective encryption policy of the column at
// the given path. Without a configured column map, every column is encrypted
// with the footer key. With a map, listed columns use their bound policy and
// all others are plaintext. Read-only; safe for concurrent use.
func (f *FileEncryptionProperties) ColumnProperties(columnPath string) (*ColumnEncryptionProperties, error) {
	if f.columnProperties == nil {
		return NewColumnBuilder(columnPath, true).Build()
	}
	if col, ok := f.columnProperties[columnPath]; ok {
		return col, nil
	}
	return NewColumnBuilder(columnPath, false).Build()
}

// IsUtilized reports whether the properties were already consumed by a write
func (f *FileEncryptionProperties) IsUtilized() bool {
	return f.utilized
}

// MarkUtilized records that a writer consumed the properties. Writers call it
// exactly once when the write begins; reusing consumed properties for a
// second file would duplicate per-file AAD material across files.
func (f *FileEncryptionProperties) MarkUtilized() {
	f.utilized = true
}

// WipeOutEncryptionKeys overwrites the footer key and every bound column key
// with zeros. Writers call it once, after the file is written and no key
// reads are pending.
func (f *FileEncryptionProperties) WipeOutEncryptionKeys() {
	wipeBytes(f.footerKey)
	for _, col := range f.columnProperties {
		col.WipeKey()
	}
}

// DeepClone produces new, not yet consumed file encryption properties with
// the same policy: independently owned copies of all key material, fresh
// per-file AAD material, and deep-cloned column policies. If newAadPrefix is
// nil the original prefix is kept, otherwise it replaces the original.
func (f *FileEncryptionProperties) DeepClone(newAadPrefix []byte) (*FileEncryptionProperties, error) {
	var columns map[string]*ColumnEncryptionProperties
	if f.columnProperties != nil {
		columns = make(map[string]*ColumnEncryptionProperties, len(f.columnProperties))
		for path, col := range f.columnProperties {
			clone := col.DeepClone()
			clone.markUtilized()
			columns[path] = clone
		}
	}

	if newAadPrefix == nil {
		newAadPrefix = f.aadPrefix
	}

	return newFileEncryptionProperties(f.cipher, f.footerKey, f.footerKeyMetadata,
		f.encryptedFooter, newAadPrefix, f.storeAadPrefixInFile, columns)
}
