//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBucketCount(t *testing.T) {
	t.Run("halves number of records above minimum", func(t *testing.T) {
		// Prepare
		records := []int{-10, 0, 1, 199, 200, 201, 202, 2048, 1000000}
		buckets := []int{100, 100, 100, 100, 100, 100, 101, 1024, 500000}

		// Execute and Check
		for i := 0; i < len(records); i++ {
			assert.Equalf(t, buckets[i], BucketCount(records[i], 100), "bucket count for %d records", records[i])
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("limits length", func(t *testing.T) {
		// Prepare
		a := []byte("0123456789")

		// Execute
		b := Truncate(a, 4)

		// Check
		assert.Equal(t, []byte("0123"), b, "slice has right length")
	})

	t.Run("stops at first NUL byte", func(t *testing.T) {
		// Prepare
		a := []byte{'A', 'B', 0, 'C'}

		// Execute
		b := Truncate(a, 255)

		// Check
		assert.Equal(t, []byte("AB"), b, "cut at NUL")
	})

	t.Run("keeps short input untouched", func(t *testing.T) {
		// Execute
		b := Truncate([]byte("LOOKUP_SEQ 5"), 255)

		// Check
		assert.Equal(t, "LOOKUP_SEQ 5", string(b))
	})
}
