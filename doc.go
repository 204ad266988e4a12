// Package parquetcrypt implements the per-file encryption-policy layer of a
// columnar file format's modular encryption scheme: validated builders for
// file and column encryption properties, the single-use property lifecycle,
// and the AAD-derivation protocol binding ciphertext to its place in a file.
//
// # Overview
//
// Before writing an encrypted file, a producer declares the cipher variant,
// whether the footer is encrypted, the footer key and its retrieval
// metadata, an optional AAD prefix, and per-column encryption overrides.
// parquetcrypt turns this declaration into immutable, validated
// FileEncryptionProperties that the writer consumes for exactly one file.
//
// The package performs no encryption itself. The cipher layer, footer
// serialization and file I/O are external collaborators; they consume the
// properties and the module AADs derived here.
//
// # Basic Usage
//
//	footerKey := make([]byte, 32) // obtained from the application's key management
//
//	props, err := parquetcrypt.NewBuilder(footerKey).
//	    WithFooterKeyID(parquetcrypt.RandomKeyID()).
//	    WithAADPrefix([]byte("sales.2026.q3")).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The writer resolves each column's policy while writing...
//	col, _ := props.ColumnProperties("order.total")
//	_ = col.IsEncryptedWithFooterKey() // true: no column map configured
//
//	// ...and destroys the key material when the file is complete.
//	props.WipeOutEncryptionKeys()
//
// A properties object can be used for writing only one file, because its
// random AAD-file-unique component must never repeat across files. Use
// DeepClone to encrypt further files with the same policy.
//
// # Security Considerations
//
// Protected against:
//   - Replacing a file's ciphertext with another file's (AAD prefix)
//   - Relocating ciphertext between modules, pages or columns (module AADs)
//   - Key material lingering in memory after writing (terminal wipe)
//   - Caller buffer mutation reaching staged configuration (defensive copies)
//
// Not protected against:
//   - Callers reading key bytes after declaring the write complete; wiped
//     keys read as zeros rather than failing
//   - Concurrent wipes racing in-flight key reads; writers enforce the
//     consume, use, wipe ordering
//   - Memory dumps taken while keys are live
package parquetcrypt
