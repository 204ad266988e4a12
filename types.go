package parquetcrypt

// ParquetCipher identifies the authenticated encryption variant used for a file
type ParquetCipher uint8

const (
	// AesGcmV1 encrypts all modules (pages, headers, footer) with AES-GCM
	AesGcmV1 ParquetCipher = iota
	// AesGcmCtrV1 encrypts pages with AES-CTR and metadata modules with AES-GCM
	AesGcmCtrV1
)

// String returns the string representation of the cipher
func (c ParquetCipher) String() string {
	switch c {
	case AesGcmV1:
		return "AES_GCM_V1"
	case AesGcmCtrV1:
		return "AES_GCM_CTR_V1"
	default:
		return "unknown"
	}
}

// Supported AES key lengths in bytes
const (
	KeyLength128 = 16
	KeyLength192 = 24
	KeyLength256 = 32
)

// AADFileUniqueLength is the length in bytes of the random per-file AAD
// component. Fixed by the file format; files written with a different
// length are unreadable by compliant decryptors.
const AADFileUniqueLength = 8

// AesGcmV1Algorithm carries the AES_GCM_V1 fields persisted in the file
// footer metadata.
type AesGcmV1Algorithm struct {
	// AadPrefix is present only when the writer chose to store the
	// caller-supplied prefix in the file.
	AadPrefix []byte

	// AadFileUnique is the random per-file AAD component.
	AadFileUnique []byte

	// SupplyAadPrefix tells readers they must obtain the AAD prefix
	// out-of-band because it is not stored in the file.
	SupplyAadPrefix bool
}

// AesGcmCtrV1Algorithm carries the AES_GCM_CTR_V1 fields persisted in the
// file footer metadata.
type AesGcmCtrV1Algorithm struct {
	AadPrefix       []byte
	AadFileUnique   []byte
	SupplyAadPrefix bool
}

// EncryptionAlgorithm is the algorithm metadata record embedded in file
// footers. Exactly one variant is set, matching the selected ParquetCipher.
type EncryptionAlgorithm struct {
	GcmV1    *AesGcmV1Algorithm
	GcmCtrV1 *AesGcmCtrV1Algorithm
}

// Cipher returns the ParquetCipher the populated variant corresponds to
func (a EncryptionAlgorithm) Cipher() ParquetCipher {
	if a.GcmCtrV1 != nil {
		return AesGcmCtrV1
	}
	return AesGcmV1
}

// IsSetGcmV1 reports whether the AES_GCM_V1 variant is populated
func (a EncryptionAlgorithm) IsSetGcmV1() bool {
	return a.GcmV1 != nil
}

// IsSetGcmCtrV1 reports whether the AES_GCM_CTR_V1 variant is populated
func (a EncryptionAlgorithm) IsSetGcmCtrV1() bool {
	return a.GcmCtrV1 != nil
}
