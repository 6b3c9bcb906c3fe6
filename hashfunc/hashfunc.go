package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a new hash table is created. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the number of
	// buckets given when creating the hash table.
	//   - tableSize is the number of buckets the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// It must never fail, every int32 including negative numbers and math.MinInt32 has to produce a valid bucket.
	HashFunc1(key int32) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The hash table is created with a fixed number of buckets and will refuse an algorithm that changes the
	// table size in SetTableSize (for instance by rounding up to nearest 2 to the power of x).
	GetTableSize() int64
}
