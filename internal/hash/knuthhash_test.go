//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestKnuthHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates valid bucket numbers", func(t *testing.T) {
		// Prepare
		h := NewKnuthHashAlgorithm(100)
		keys := []int32{0, 1, 2, -1, math.MinInt32, math.MaxInt32, 12345}
		buckets := []int64{0, 61, 26, 35, 48, 83, 61}

		// Execute and Check
		for i, key := range keys {
			assert.Equalf(t, buckets[i], h.HashFunc1(key), "correct bucket for key %d", key)
		}
	})

	t.Run("stays within table size for single bucket", func(t *testing.T) {
		// Prepare
		h := NewKnuthHashAlgorithm(1)

		// Execute and Check
		for _, key := range []int32{math.MinInt32, -7, 0, 7, math.MaxInt32} {
			assert.Equalf(t, int64(0), h.HashFunc1(key), "key %d in only bucket", key)
		}
	})

	t.Run("multiplies modulo 2^32 before reducing", func(t *testing.T) {
		// Prepare
		h := NewKnuthHashAlgorithm(1024)

		// Execute
		bucketNo := h.HashFunc1(math.MinInt32)

		// Check
		assert.Equal(t, int64(0), bucketNo, "2^31 times an odd constant is 2^31 modulo 2^32")
		assert.Equal(t, int64(433), h.HashFunc1(1), "correct bucket for key 1")
	})
}

func TestKnuthHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewKnuthHashAlgorithm(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(16 + 7)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "table size is not rounded")
	})
}
