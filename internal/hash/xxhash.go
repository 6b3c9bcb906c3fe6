package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - Bucket selection algorithm using the 64-bit xxHash digest of the four little endian
// bytes of the key, reduced modulo the table size.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key int32) int64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(key))
	return int64(xxhash.Sum64(b[:]) % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
