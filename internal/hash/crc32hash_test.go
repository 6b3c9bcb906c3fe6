//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCRC32HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm(100)

		// Execute and Check
		assert.Equal(t, int64(92), h.HashFunc1(0), "create a valid bucket number")
		assert.Equal(t, int64(1), h.HashFunc1(1), "create a valid bucket number")
		assert.Equal(t, int64(95), h.HashFunc1(-1), "create a valid bucket number")
	})
}

func TestXXHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("stays within table size", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(37)

		// Execute and Check
		for key := int32(-1000); key < 1000; key++ {
			b := h.HashFunc1(key)
			assert.GreaterOrEqual(t, b, int64(0))
			assert.Less(t, b, int64(37))
		}
	})
}

func TestByName(t *testing.T) {
	t.Run("returns named algorithms", func(t *testing.T) {
		for _, name := range Names() {
			// Execute
			ha, err := ByName(name, 64)

			// Check
			require.NoErrorf(t, err, "algorithm %s exists", name)
			assert.Equal(t, int64(64), ha.GetTableSize(), "table size is set")
		}
	})

	t.Run("empty name gives knuth", func(t *testing.T) {
		// Execute
		ha, err := ByName("", 8)

		// Check
		require.NoError(t, err)
		assert.IsType(t, &KnuthHashAlgorithm{}, ha)
	})

	t.Run("error on unknown name", func(t *testing.T) {
		// Execute
		_, err := ByName("md5", 8)

		// Check
		assert.ErrorIs(t, err, UnknownAlgorithm{Name: "md5"}, "get correct error")
		assert.Equal(t, []string{CRC32, Knuth, XXHash}, Names())
	})
}
