// Package mchashbrowns implements an in-memory hash table over int32 keys and values using separate chaining,
// together with a set of benchmark drivers exercising it under sequential, random and mixed workloads.
package mchashbrowns

import (
	"github.com/gostonefire/mchashbrowns/hashfunc"
	"github.com/gostonefire/mchashbrowns/internal/hash"
)

// MaxBucketCount - Largest number of buckets a hash table can be created with
const MaxBucketCount = 1 << 30

// node - One element in a bucket chain
type node struct {
	key   int32
	value int32
	next  *node
}

// HashTable - The main implementation struct. A nil *HashTable, as well as a destroyed one, is an absent table
// and all operations on it return their falsy or empty result.
type HashTable struct {
	buckets       []*node
	size          int
	hashAlgorithm hashfunc.HashAlgorithm
}

// New - Returns a new empty hash table with a fixed number of buckets.
//   - bucketCount is the number of buckets (chain heads), it has to be between 1 and MaxBucketCount
//   - hashAlgorithm is an optional entry to provide a custom bucket selection algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct, nil if err is not nil
//   - err is of type AllocationRefused if bucketCount is out of range, or HashAlgorithmMismatch if the custom algorithm does not address exactly bucketCount buckets
func New(bucketCount int, hashAlgorithm hashfunc.HashAlgorithm) (hashTable *HashTable, err error) {
	if bucketCount <= 0 || bucketCount > MaxBucketCount {
		err = AllocationRefused{BucketCount: bucketCount}
		return
	}

	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewKnuthHashAlgorithm(int64(bucketCount))
	} else {
		hashAlgorithm.SetTableSize(int64(bucketCount))
		if tableSize := hashAlgorithm.GetTableSize(); tableSize != int64(bucketCount) {
			err = HashAlgorithmMismatch{BucketCount: int64(bucketCount), TableSize: tableSize}
			return
		}
	}

	hashTable = &HashTable{
		buckets:       make([]*node, bucketCount),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// Destroy - Unlinks every node of every chain and drops the bucket array. The table is absent afterwards.
func (H *HashTable) Destroy() {
	if H.absent() {
		return
	}

	H.unlinkChains()
	H.buckets = nil
	H.size = 0
}

// Clear - Unlinks every node of every chain and sets size to zero, the number of buckets is preserved.
func (H *HashTable) Clear() {
	if H.absent() {
		return
	}

	H.unlinkChains()
	H.size = 0
}

// Size - Returns number of records currently stored, 0 for an absent table
func (H *HashTable) Size() int {
	if H.absent() {
		return 0
	}

	return H.size
}

// BucketCount - Returns the fixed number of buckets, 0 for an absent table
func (H *HashTable) BucketCount() int {
	if H.absent() {
		return 0
	}

	return len(H.buckets)
}

// absent - Returns true if the table is nil or destroyed
func (H *HashTable) absent() bool {
	return H == nil || H.buckets == nil
}

// unlinkChains - Breaks every chain apart so no node stays reachable and sets every bucket head to nil
func (H *HashTable) unlinkChains() {
	for i := range H.buckets {
		iter := newChainIterator(H.buckets[i])
		for iter.hasNext() {
			n := iter.next()
			n.next = nil
		}
		H.buckets[i] = nil
	}
}
