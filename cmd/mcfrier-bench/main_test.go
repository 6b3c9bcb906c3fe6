//go:build unit

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/mchashbrowns/internal/report"
)

func TestRun(t *testing.T) {
	t.Run("runs selected benchmarks and saves report", func(t *testing.T) {
		// Prepare
		var out, errOut bytes.Buffer
		path := filepath.Join(t.TempDir(), "report.json")

		// Execute
		code := run([]string{"--counts", "1000,2000", "--only", "insert_sequential,mixed_workload", "--hash", "crc32", "-o", path}, &out, &errOut)

		// Check
		require.Equal(t, 0, code, errOut.String())
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5, "four runs and the report line")
		assert.Regexp(t, `^insert_sequential n=1000: \(bucket_count=1024, avg_chain_len=0\.98\) \(used_buckets=\d+, longest_chain=\d+\) \d+\.\d{6} s, 1000 ok, 0 failed$`, lines[0])
		assert.Regexp(t, `^mixed_workload n=1000: `, lines[1])

		rep, err := report.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "crc32", rep.HashAlgorithm)
		require.Len(t, rep.Runs, 4)
		require.NotNil(t, rep.Runs[0].Table, "insert run records its table")
		assert.Equal(t, 1000, rep.Runs[0].Table.Records)
		assert.Equal(t, 1024, rep.Runs[0].Table.Buckets)
		assert.Nil(t, rep.Runs[1].Table, "mixed run has no table")
		assert.Equal(t, "mixed_workload", rep.Runs[3].Name)
		assert.Equal(t, 2000, rep.Runs[3].Count)
		assert.Equal(t, 2000, rep.Runs[3].Result.Operations)
		assert.Zero(t, rep.Runs[3].Result.FailedOps, "mixed workload misses are not failures")
	})

	t.Run("rejects unknown benchmark", func(t *testing.T) {
		// Prepare
		var out, errOut bytes.Buffer

		// Execute
		code := run([]string{"--only", "bogus"}, &out, &errOut)

		// Check
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), `unknown benchmark "bogus"`)
	})

	t.Run("rejects unknown hash algorithm", func(t *testing.T) {
		// Prepare
		var out, errOut bytes.Buffer

		// Execute
		code := run([]string{"--hash", "md5"}, &out, &errOut)

		// Check
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "unknown hash algorithm")
	})
}

func TestSelectBenchmarks(t *testing.T) {
	t.Run("keeps the usual order", func(t *testing.T) {
		// Execute
		selected, err := selectBenchmarks([]string{"mixed_workload", "insert_random"})

		// Check
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, "insert_random", selected[0].Name)
		assert.Equal(t, "mixed_workload", selected[1].Name)
	})
}
