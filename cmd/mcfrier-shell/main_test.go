//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/mchashbrowns/internal/client"
	"github.com/gostonefire/mchashbrowns/internal/conf"
)

func newTestREPL(t *testing.T, content string) (*REPL, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, conf.FileName), []byte(content), 0o666))

	var out bytes.Buffer

	return &REPL{client: client.New(dir), out: &out}, &out
}

func TestREPL_Execute(t *testing.T) {
	t.Run("quits", func(t *testing.T) {
		// Prepare
		r, _ := newTestREPL(t, conf.InitialResult)

		// Execute and Check
		for _, line := range []string{"quit", "exit", "q", "QUIT"} {
			assert.Truef(t, r.Execute(line), "%q quits", line)
		}
	})

	t.Run("shows help", func(t *testing.T) {
		// Prepare
		r, out := newTestREPL(t, conf.InitialResult)

		// Execute
		quit := r.Execute("help")

		// Check
		assert.False(t, quit)
		assert.Contains(t, out.String(), "INSERT_SEQ <n>")
		assert.Contains(t, out.String(), "race <n>...")
	})

	t.Run("shows current result", func(t *testing.T) {
		// Prepare
		r, out := newTestREPL(t, "OK 0.250000\n")

		// Execute
		r.Execute("result")

		// Check
		assert.Equal(t, "OK 0.250000\n", out.String())
	})

	t.Run("race needs valid counts", func(t *testing.T) {
		// Prepare
		r, out := newTestREPL(t, conf.InitialResult)

		// Execute
		r.Execute("race")
		r.Execute("race abc")

		// Check
		assert.Contains(t, out.String(), "usage: race <n>...")
		assert.Contains(t, out.String(), `invalid record count "abc"`)
	})

	t.Run("reports unparseable response", func(t *testing.T) {
		// Prepare
		r, out := newTestREPL(t, "")

		// Execute
		r.Execute("INSERT_SEQ 10")

		// Check
		assert.Contains(t, out.String(), "error: malformed response")
	})
}

func TestCompleter(t *testing.T) {
	t.Run("completes command words", func(t *testing.T) {
		assert.Equal(t, []string{"INSERT_SEQ "}, completer("INS"))
		assert.Equal(t, []string{"race ", "result"}, completer("r"))
		assert.Empty(t, completer("x"))
	})
}
