package mchashbrowns

import (
	"github.com/gostonefire/mchashbrowns/internal/model"
)

// Insert - Updates an existing record with new value or adds it if no existing is found with same key.
// A new record is put at the head of its bucket chain.
//   - key is the identifier of a record
//   - value is the value to store along with its key
//
// It returns:
//   - ok is true on success, false only if the table is absent
func (H *HashTable) Insert(key, value int32) (ok bool) {
	bucketNo, ok := H.getBucketNo(key)
	if !ok {
		return
	}

	// Try to find an existing record with matching key
	iter := newChainIterator(H.buckets[bucketNo])
	for iter.hasNext() {
		n := iter.next()
		if n.key == key {
			n.value = value
			return
		}
	}

	H.buckets[bucketNo] = &node{key: key, value: value, next: H.buckets[bucketNo]}
	H.size++

	return
}

// Lookup - Gets the value of the record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - found is true if a record with key exists
func (H *HashTable) Lookup(key int32) (value int32, found bool) {
	bucketNo, ok := H.getBucketNo(key)
	if !ok {
		return
	}

	iter := newChainIterator(H.buckets[bucketNo])
	for iter.hasNext() {
		n := iter.next()
		if n.key == key {
			value = n.value
			found = true
			return
		}
	}

	return
}

// Remove - Unlinks the record corresponding to key from its bucket chain.
//   - key is the identifier of a record
//
// It returns:
//   - removed is true if a record was found and unlinked
func (H *HashTable) Remove(key int32) (removed bool) {
	bucketNo, ok := H.getBucketNo(key)
	if !ok {
		return
	}

	var prev *node
	iter := newChainIterator(H.buckets[bucketNo])
	for iter.hasNext() {
		n := iter.next()
		if n.key == key {
			if prev == nil {
				H.buckets[bucketNo] = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			H.size--
			removed = true
			return
		}
		prev = n
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a model.TableStat struct with information.
// For big tables this takes a while and the BucketDistribution slice can be memory heavy (one entry per bucket).
//   - includeDistribution set to true will include a slice of length BucketCount with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) (tableStat model.TableStat) {
	if H.absent() {
		return
	}

	tableStat.Buckets = len(H.buckets)
	if includeDistribution {
		tableStat.BucketDistribution = make([]int, len(H.buckets))
	}

	// Iterate over every available bucket
	for i, head := range H.buckets {
		var chainLength int
		iter := newChainIterator(head)
		for iter.hasNext() {
			iter.next()
			chainLength++
		}

		tableStat.Records += chainLength
		if chainLength > 0 {
			tableStat.UsedBuckets++
		}
		if chainLength > tableStat.LongestChain {
			tableStat.LongestChain = chainLength
		}
		if includeDistribution {
			tableStat.BucketDistribution[i] = chainLength
		}
	}

	tableStat.AverageChainLength = float64(tableStat.Records) / float64(tableStat.Buckets)

	return
}

// getBucketNo - Returns which bucket number that the given key results in. It returns false if the table is
// absent or if the bucket algorithm gives a number outside permitted range.
func (H *HashTable) getBucketNo(key int32) (bucketNo int, ok bool) {
	if H.absent() {
		return
	}

	b := H.hashAlgorithm.HashFunc1(key)
	if b < 0 || b >= int64(len(H.buckets)) {
		return
	}

	bucketNo = int(b)
	ok = true

	return
}
