// mcfrier-bench runs the hash table benchmark workloads in process and optionally saves a JSON report.
//
// Usage:
//
//	mcfrier-bench [options]
//
// Options:
//
//	    --counts   Comma separated workload sizes (default: 100000,1000000)
//	    --only     Comma separated benchmark names to run (default: all)
//	    --hash     Bucket selection algorithm: crc32, knuth or xxhash (default: knuth)
//	-o, --out      Write a JSON report to this path
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/gostonefire/mchashbrowns"
	"github.com/gostonefire/mchashbrowns/hashfunc"
	"github.com/gostonefire/mchashbrowns/internal/hash"
	"github.com/gostonefire/mchashbrowns/internal/model"
	"github.com/gostonefire/mchashbrowns/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	flagSet := flag.NewFlagSet("mcfrier-bench", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	counts := flagSet.IntSlice("counts", []int{100000, 1000000}, "Comma separated workload sizes")
	only := flagSet.StringSlice("only", nil, "Comma separated benchmark names to run")
	hashName := flagSet.String("hash", hash.Knuth, "Bucket selection algorithm")
	outPath := flagSet.StringP("out", "o", "", "Write a JSON report to this path")
	help := flagSet.BoolP("help", "h", false, "Show help")

	if err := flagSet.Parse(args); err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if *help {
		_, _ = fmt.Fprintln(out, "Usage: mcfrier-bench [options]")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Options:")
		_, _ = fmt.Fprint(out, flagSet.FlagUsages())
		return 0
	}

	if _, err := hash.ByName(*hashName, 1); err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	benchmarks, err := selectBenchmarks(*only)
	if err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	var table *model.TableStat
	bench := mchashbrowns.Bench{
		NewHashAlgorithm: func(tableSize int64) hashfunc.HashAlgorithm {
			hashAlgorithm, _ := hash.ByName(*hashName, tableSize)
			return hashAlgorithm
		},
		Diag: out,
		TableBuilt: func(stat model.TableStat) {
			table = &stat
			_, _ = fmt.Fprintf(out, "(used_buckets=%d, longest_chain=%d) ", stat.UsedBuckets, stat.LongestChain)
		},
	}

	rep := report.New(*hashName)
	for _, count := range *counts {
		for _, nb := range benchmarks {
			table = nil

			_, _ = fmt.Fprintf(out, "%s n=%d: ", nb.Name, count)
			result := nb.Run(bench, count)
			_, _ = fmt.Fprintf(out, "%.6f s, %d ok, %d failed\n", result.TotalTime, result.SuccessfulOps, result.FailedOps)

			rep.Add(nb.Name, count, result, table)
		}
	}

	if *outPath != "" {
		if err = rep.Save(*outPath); err != nil {
			_, _ = fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		_, _ = fmt.Fprintf(out, "report written to %s\n", *outPath)
	}

	return 0
}

// selectBenchmarks - Returns the named benchmarks in their usual order, all of them if names is empty
func selectBenchmarks(names []string) ([]mchashbrowns.NamedBenchmark, error) {
	if len(names) == 0 {
		return mchashbrowns.Benchmarks, nil
	}

	known := make([]string, 0, len(mchashbrowns.Benchmarks))
	for _, nb := range mchashbrowns.Benchmarks {
		known = append(known, nb.Name)
	}

	for _, name := range names {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("unknown benchmark %q, valid names are %s", name, strings.Join(known, ", "))
		}
	}

	var selected []mchashbrowns.NamedBenchmark
	for _, nb := range mchashbrowns.Benchmarks {
		if slices.Contains(names, nb.Name) {
			selected = append(selected, nb)
		}
	}

	return selected, nil
}
