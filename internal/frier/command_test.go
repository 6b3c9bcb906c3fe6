//go:build unit

package frier

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Run("parses valid commands", func(t *testing.T) {
		cases := []struct {
			input   string
			keyword string
			count   int64
		}{
			{"INSERT_SEQ 1000", "INSERT_SEQ", 1000},
			{"INSERT_SEQ 1000\n", "INSERT_SEQ", 1000},
			{"LOOKUP_SEQ 5", "LOOKUP_SEQ", 5},
			{"INSERT_SEQ42", "INSERT_SEQ", 42},
			{"INSERT_SEQ \t 7", "INSERT_SEQ", 7},
			{"INSERT_SEQ -3", "INSERT_SEQ", -3},
			{"INSERT_SEQ +3", "INSERT_SEQ", 3},
			{"INSERT_SEQ 12abc", "INSERT_SEQ", 12},
			{"LOOKUP_SEQ 0 trailing words", "LOOKUP_SEQ", 0},
			{"INSERT_SEQ " + strconv.FormatInt(math.MaxInt64, 10), "INSERT_SEQ", math.MaxInt64},
		}

		for _, c := range cases {
			// Execute
			cmd, ok := parseCommand([]byte(c.input))

			// Check
			assert.Truef(t, ok, "parse %q", c.input)
			assert.Equalf(t, c.keyword, cmd.keyword, "keyword of %q", c.input)
			assert.Equalf(t, c.count, cmd.count, "count of %q", c.input)
		}
	})

	t.Run("rejects invalid commands", func(t *testing.T) {
		for _, input := range []string{
			"",
			"HELLO",
			"INSERT_SEQ",
			"INSERT_SEQ ",
			"INSERT_SEQ abc",
			"INSERT_SEQ -",
			"insert_seq 10",
			" INSERT_SEQ 10",
			"DELETE_SEQ 10",
			"INSERT_SEQ 99999999999999999999",
		} {
			// Execute
			_, ok := parseCommand([]byte(input))

			// Check
			assert.Falsef(t, ok, "reject %q", input)
		}
	})
}

func TestResponseLines(t *testing.T) {
	t.Run("formats ok line with six decimals", func(t *testing.T) {
		assert.Equal(t, "OK 0.000000\n", okLine(0))
		assert.Equal(t, "OK 1.234568\n", okLine(1.2345678))
	})

	t.Run("formats error line", func(t *testing.T) {
		assert.Equal(t, "ERROR NO_TABLE\n", errorLine("NO_TABLE"))
	})
}

func TestResultBuffer(t *testing.T) {
	t.Run("reads in chunks and ends with eof", func(t *testing.T) {
		// Prepare
		r := newResultBuffer(512, "OK 0.123456\n")

		// Execute
		first := r.readAt(4, 0)
		second := r.readAt(100, 4)
		eof := r.readAt(10, int64(r.len()))

		// Check
		assert.Equal(t, "OK 0", string(first))
		assert.Equal(t, ".123456\n", string(second))
		assert.Empty(t, eof, "no bytes at end of file")
		assert.Empty(t, r.readAt(10, -1), "negative offset reads nothing")
	})

	t.Run("truncates content beyond capacity", func(t *testing.T) {
		// Prepare
		r := newResultBuffer(4, "READY\n")

		// Check
		assert.Equal(t, "READ", r.String())
	})

	t.Run("returned data does not alias the buffer", func(t *testing.T) {
		// Prepare
		r := newResultBuffer(16, "READY\n")
		data := r.readAt(16, 0)

		// Execute
		r.set("OK 1.000000\n")

		// Check
		assert.Equal(t, "READY\n", string(data))
	})
}
