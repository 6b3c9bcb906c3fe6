//go:build unit

package mchashbrowns

import (
	"github.com/gostonefire/mchashbrowns/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// roundingHashAlgorithm - Custom algorithm that rounds the table size up to an even number
type roundingHashAlgorithm struct {
	hash.KnuthHashAlgorithm
}

func (R *roundingHashAlgorithm) SetTableSize(tableSize int64) {
	R.KnuthHashAlgorithm.SetTableSize(tableSize + tableSize%2)
}

func TestNew(t *testing.T) {
	t.Run("creates hash table", func(t *testing.T) {
		// Execute
		ht, err := New(100, nil)

		// Check
		require.NoError(t, err, "creates hash table")
		assert.Equal(t, 100, ht.BucketCount(), "correct number of buckets")
		assert.Equal(t, 0, ht.Size(), "table is empty")
		assert.NotNil(t, ht.hashAlgorithm, "hash algorithm is assigned")
		assert.IsType(t, &hash.KnuthHashAlgorithm{}, ht.hashAlgorithm, "internal algorithm is knuth")
	})

	t.Run("creates hash table with a single bucket", func(t *testing.T) {
		// Execute
		ht, err := New(1, nil)

		// Check
		require.NoError(t, err, "creates hash table")
		for i := int32(-50); i < 50; i++ {
			assert.True(t, ht.Insert(i, i))
		}
		assert.Equal(t, 100, ht.Size(), "all keys in one chain")
		stat := ht.Stat(false)
		assert.Equal(t, 100, stat.LongestChain, "all keys chain in the only bucket")
	})

	t.Run("creates hash table with custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := hash.NewCRC32HashAlgorithm(7)

		// Execute
		ht, err := New(1000, ha)

		// Check
		require.NoError(t, err, "creates hash table")
		assert.Equal(t, int64(1000), ha.GetTableSize(), "table size updated on algorithm")
		assert.Same(t, ha, ht.hashAlgorithm, "custom algorithm is used")
	})

	t.Run("error when supplying an invalid bucket count", func(t *testing.T) {
		for _, bucketCount := range []int{0, -1, MaxBucketCount + 1} {
			// Execute
			ht, err := New(bucketCount, nil)

			// Check
			assert.ErrorIsf(t, err, AllocationRefused{}, "get correct error for %d buckets", bucketCount)
			assert.Nil(t, ht, "table is absent")
		}
	})

	t.Run("error when algorithm changes table size", func(t *testing.T) {
		// Execute
		ht, err := New(11, &roundingHashAlgorithm{})

		// Check
		assert.ErrorIs(t, err, HashAlgorithmMismatch{}, "get correct error")
		assert.Nil(t, ht, "table is absent")
	})
}

func TestHashTable_Destroy(t *testing.T) {
	t.Run("destroys table and unlinks nodes", func(t *testing.T) {
		// Prepare
		ht, err := New(4, nil)
		require.NoError(t, err)
		for i := int32(0); i < 100; i++ {
			ht.Insert(i, i)
		}
		var nodes []*node
		for _, head := range ht.buckets {
			for n := head; n != nil; n = n.next {
				nodes = append(nodes, n)
			}
		}

		// Execute
		ht.Destroy()

		// Check
		assert.Len(t, nodes, 100, "collected all nodes")
		for _, n := range nodes {
			assert.Nil(t, n.next, "node is unlinked")
		}
		assert.Equal(t, 0, ht.Size(), "size is zero")
		assert.Equal(t, 0, ht.BucketCount(), "buckets are dropped")
		assert.False(t, ht.Insert(1, 1), "destroyed table is absent")
		_, found := ht.Lookup(1)
		assert.False(t, found, "destroyed table is absent")
	})

	t.Run("destroying twice is harmless", func(t *testing.T) {
		// Prepare
		ht, err := New(4, nil)
		require.NoError(t, err)

		// Execute
		ht.Destroy()
		ht.Destroy()

		// Check
		assert.Equal(t, 0, ht.Size())
	})
}

func TestHashTable_Absent(t *testing.T) {
	t.Run("nil table returns falsy results", func(t *testing.T) {
		// Prepare
		var ht *HashTable

		// Execute and Check
		assert.False(t, ht.Insert(1, 2), "insert fails")
		_, found := ht.Lookup(1)
		assert.False(t, found, "lookup fails")
		assert.False(t, ht.Remove(1), "remove fails")
		assert.Equal(t, 0, ht.Size(), "size is zero")
		assert.Equal(t, 0, ht.BucketCount(), "no buckets")
		assert.Equal(t, 0, ht.Stat(true).Records, "empty stat")
		assert.NotPanics(t, ht.Clear, "clear is a no-op")
		assert.NotPanics(t, ht.Destroy, "destroy is a no-op")
	})
}
