package hash

// KnuthMultiplier - Knuth's multiplicative hashing constant (2^32 divided by the golden ratio)
const KnuthMultiplier uint32 = 2654435761

// KnuthHashAlgorithm - The internally used bucket selection algorithm. The key is reinterpreted as an unsigned
// 32-bit value, multiplied (modulo 2^32) by KnuthMultiplier and then reduced modulo the table size.
// Negative keys map through the same reinterpretation, so math.MinInt32 becomes 0x80000000.
type KnuthHashAlgorithm struct {
	tableSize int64
}

// NewKnuthHashAlgorithm - Returns a pointer to a new KnuthHashAlgorithm instance
func NewKnuthHashAlgorithm(tableSize int64) *KnuthHashAlgorithm {
	ha := &KnuthHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm. The table size is used as is.
//   - tableSize is the number of buckets the hash table will address
func (K *KnuthHashAlgorithm) SetTableSize(tableSize int64) {
	K.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (K *KnuthHashAlgorithm) HashFunc1(key int32) int64 {
	h := uint32(key) * KnuthMultiplier
	return int64(uint64(h) % uint64(K.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (K *KnuthHashAlgorithm) GetTableSize() int64 {
	return K.tableSize
}
