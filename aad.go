package parquetcrypt

import (
	"encoding/binary"
	"fmt"
)

// ModuleType identifies which part of an encrypted file a module AAD covers.
// The byte value is bound into the AAD, so tampering cannot relocate a
// ciphertext to a different module of the same file.
type ModuleType uint8

const (
	ModuleFooter ModuleType = iota
	ModuleColumnMetaData
	ModuleDataPage
	ModuleDataPageHeader
	ModuleDictionaryPage
	ModuleDictionaryPageHeader
	ModuleColumnIndex
	ModuleOffsetIndex
	ModuleBloomFilterHeader
	ModuleBloomFilterBitset
)

// maxModuleOrdinal is the largest row-group, column or page ordinal that fits
// the 2-byte signed encoding shared with other implementations of the format.
const maxModuleOrdinal = 32767

// moduleOrdinalLength is the encoded size of one ordinal in a module AAD
const moduleOrdinalLength = 2

// concatAAD concatenates AAD components into a single freshly allocated slice
func concatAAD(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ordinalBytes encodes an ordinal as 2 bytes little-endian
func ordinalBytes(ordinal int) []byte {
	b := make([]byte, moduleOrdinalLength)
	binary.LittleEndian.PutUint16(b, uint16(ordinal))
	return b
}

// CreateModuleAAD derives the AAD for one module of a file from the file-level
// AAD seed. Footer modules take no ordinals. Page ordinals apply only to data
// pages and data page headers; pass -1 for the other module types.
func CreateModuleAAD(fileAAD []byte, module ModuleType, rowGroupOrdinal, columnOrdinal, pageOrdinal int) ([]byte, error) {
	typeByte := []byte{byte(module)}

	if module == ModuleFooter {
		return concatAAD(fileAAD, typeByte), nil
	}

	if err := validateOrdinal(rowGroupOrdinal, "row group"); err != nil {
		return nil, err
	}
	if err := validateOrdinal(columnOrdinal, "column"); err != nil {
		return nil, err
	}

	if module != ModuleDataPage && module != ModuleDataPageHeader {
		return concatAAD(fileAAD, typeByte,
			ordinalBytes(rowGroupOrdinal), ordinalBytes(columnOrdinal)), nil
	}

	if err := validateOrdinal(pageOrdinal, "page"); err != nil {
		return nil, err
	}
	return concatAAD(fileAAD, typeByte,
		ordinalBytes(rowGroupOrdinal), ordinalBytes(columnOrdinal), ordinalBytes(pageOrdinal)), nil
}

// CreateFooterAAD derives the AAD for the file footer module
func CreateFooterAAD(fileAAD []byte) []byte {
	aad, _ := CreateModuleAAD(fileAAD, ModuleFooter, -1, -1, -1)
	return aad
}

// QuickUpdatePageAAD replaces the page ordinal in an existing data page or
// data page header AAD in place, so per-page encryption does not reallocate
// the AAD for every page in a column chunk.
func QuickUpdatePageAAD(pageAAD []byte, newPageOrdinal int) error {
	if err := validateOrdinal(newPageOrdinal, "page"); err != nil {
		return err
	}
	if len(pageAAD) < moduleOrdinalLength {
		return fmt.Errorf("page AAD too short: %d bytes", len(pageAAD))
	}
	binary.LittleEndian.PutUint16(pageAAD[len(pageAAD)-moduleOrdinalLength:], uint16(newPageOrdinal))
	return nil
}
