package mchashbrowns

import (
	"fmt"
	"io"

	"github.com/gostonefire/mchashbrowns/hashfunc"
	"github.com/gostonefire/mchashbrowns/internal/cputime"
	"github.com/gostonefire/mchashbrowns/internal/model"
	"github.com/gostonefire/mchashbrowns/internal/rand"
	"github.com/gostonefire/mchashbrowns/internal/utils"
)

// BenchMinBuckets - Least number of buckets an ephemeral benchmark table is created with
const BenchMinBuckets = 1024

// Bench - Runs benchmark workloads, each on its own ephemeral hash table.
//   - NewHashAlgorithm is an optional constructor of a custom bucket selection algorithm, nil gives the internal one
//   - Diag receives human-readable fragments about the tables built, nil discards them
//   - TableBuilt is optionally called with the statistics of each table the insert workloads built, before teardown
type Bench struct {
	NewHashAlgorithm func(tableSize int64) hashfunc.HashAlgorithm
	Diag             io.Writer
	TableBuilt       func(stat model.TableStat)
}

// NamedBenchmark - A benchmark workload together with its name
type NamedBenchmark struct {
	Name string
	Run  func(b Bench, count int) model.BenchmarkResult
}

// Benchmarks - All benchmark workloads in the order they are usually run
var Benchmarks = []NamedBenchmark{
	{Name: "insert_sequential", Run: Bench.InsertSequential},
	{Name: "insert_random", Run: Bench.InsertRandom},
	{Name: "lookup_sequential", Run: Bench.LookupSequential},
	{Name: "lookup_random", Run: Bench.LookupRandom},
	{Name: "mixed_workload", Run: Bench.MixedWorkload},
}

// BenchInsertSequential - Inserts keys 0..count-1 with value key*2, see Bench.InsertSequential
func BenchInsertSequential(count int, diag io.Writer) model.BenchmarkResult {
	return Bench{Diag: diag}.InsertSequential(count)
}

// BenchInsertRandom - Inserts count seeded random keys, see Bench.InsertRandom
func BenchInsertRandom(count int, diag io.Writer) model.BenchmarkResult {
	return Bench{Diag: diag}.InsertRandom(count)
}

// BenchLookupSequential - Looks up keys 0..count-1 in a populated table, see Bench.LookupSequential
func BenchLookupSequential(count int, diag io.Writer) model.BenchmarkResult {
	return Bench{Diag: diag}.LookupSequential(count)
}

// BenchLookupRandom - Looks up count seeded random keys in a populated table, see Bench.LookupRandom
func BenchLookupRandom(count int, diag io.Writer) model.BenchmarkResult {
	return Bench{Diag: diag}.LookupRandom(count)
}

// BenchMixedWorkload - Runs count random inserts, lookups and removes, see Bench.MixedWorkload
func BenchMixedWorkload(count int, diag io.Writer) model.BenchmarkResult {
	return Bench{Diag: diag}.MixedWorkload(count)
}

// InsertSequential - Inserts keys 0..count-1 with value key*2 into a table of max(count/2, BenchMinBuckets) buckets.
// Only the insert loop is timed.
func (B Bench) InsertSequential(count int) (result model.BenchmarkResult) {
	count = nonNegative(count)

	ht, err := B.newTable(count)
	if err != nil {
		result.FailedOps = count
		return
	}
	defer ht.Destroy()

	sw := cputime.Start()
	for i := 0; i < count; i++ {
		if ht.Insert(int32(i), int32(i*2)) {
			result.SuccessfulOps++
		} else {
			result.FailedOps++
		}
	}
	result.TotalTime = sw.Seconds()
	result.Operations = count

	B.chainFragment(ht)
	B.tableBuilt(ht)

	return
}

// InsertRandom - Inserts count keys drawn from the generator seeded with rand.Seed, the i:th key with value i.
// The keys are drawn before the insert loop which is the only part timed.
func (B Bench) InsertRandom(count int) (result model.BenchmarkResult) {
	count = nonNegative(count)
	keys := randomKeys(count)

	ht, err := B.newTable(count)
	if err != nil {
		result.FailedOps = count
		return
	}
	defer ht.Destroy()

	sw := cputime.Start()
	for i, key := range keys {
		if ht.Insert(key, int32(i)) {
			result.SuccessfulOps++
		} else {
			result.FailedOps++
		}
	}
	result.TotalTime = sw.Seconds()
	result.Operations = count

	B.chainFragment(ht)
	B.tableBuilt(ht)

	return
}

// LookupSequential - Populates a table with keys 0..count-1 and then times looking all of them up
func (B Bench) LookupSequential(count int) (result model.BenchmarkResult) {
	count = nonNegative(count)

	ht, err := B.newTable(count)
	if err != nil {
		result.FailedOps = count
		return
	}
	defer ht.Destroy()

	for i := 0; i < count; i++ {
		ht.Insert(int32(i), int32(i*2))
	}

	sw := cputime.Start()
	for i := 0; i < count; i++ {
		if _, found := ht.Lookup(int32(i)); found {
			result.SuccessfulOps++
		} else {
			result.FailedOps++
		}
	}
	result.TotalTime = sw.Seconds()
	result.Operations = count

	return
}

// LookupRandom - Populates a table with count seeded random keys and then times looking them up in the same order
func (B Bench) LookupRandom(count int) (result model.BenchmarkResult) {
	count = nonNegative(count)
	keys := randomKeys(count)

	ht, err := B.newTable(count)
	if err != nil {
		result.FailedOps = count
		return
	}
	defer ht.Destroy()

	for i, key := range keys {
		ht.Insert(key, int32(i))
	}

	sw := cputime.Start()
	for _, key := range keys {
		if _, found := ht.Lookup(key); found {
			result.SuccessfulOps++
		} else {
			result.FailedOps++
		}
	}
	result.TotalTime = sw.Seconds()
	result.Operations = count

	return
}

// MixedWorkload - For each of count iterations draws an operation (0 insert, 1 lookup, 2 remove) and a key
// in [0, 2*count) from the generator seeded with rand.Seed. Only successful operations are counted, misses of
// lookups and removes leave FailedOps untouched.
func (B Bench) MixedWorkload(count int) (result model.BenchmarkResult) {
	count = nonNegative(count)

	ht, err := B.newTable(count)
	if err != nil {
		result.FailedOps = count
		return
	}
	defer ht.Destroy()

	r := rand.New(rand.Seed)
	keySpace := 2 * count

	sw := cputime.Start()
	for i := 0; i < count; i++ {
		op := r.Int() % 3
		key := int32(int(r.Int()) % keySpace)

		var ok bool
		switch op {
		case 0:
			ok = ht.Insert(key, key*2)
		case 1:
			_, ok = ht.Lookup(key)
		default:
			ok = ht.Remove(key)
		}

		if ok {
			result.SuccessfulOps++
		}
	}
	result.TotalTime = sw.Seconds()
	result.Operations = count

	return
}

// newTable - Creates the ephemeral table for a workload of count operations
func (B Bench) newTable(count int) (*HashTable, error) {
	buckets := utils.BucketCount(count, BenchMinBuckets)

	var hashAlgorithm hashfunc.HashAlgorithm
	if B.NewHashAlgorithm != nil {
		hashAlgorithm = B.NewHashAlgorithm(int64(buckets))
	}

	return New(buckets, hashAlgorithm)
}

// chainFragment - Writes bucket count and average chain length of ht to the diagnostic writer
func (B Bench) chainFragment(ht *HashTable) {
	if B.Diag == nil {
		return
	}

	_, _ = fmt.Fprintf(B.Diag, "(bucket_count=%d, avg_chain_len=%.2f) ",
		ht.BucketCount(), float64(ht.Size())/float64(ht.BucketCount()))
}

// tableBuilt - Hands the statistics of ht to the TableBuilt callback, if any
func (B Bench) tableBuilt(ht *HashTable) {
	if B.TableBuilt == nil {
		return
	}

	B.TableBuilt(ht.Stat(false))
}

// randomKeys - Returns count keys drawn from a generator seeded with rand.Seed
func randomKeys(count int) []int32 {
	r := rand.New(rand.Seed)
	keys := make([]int32, count)
	for i := range keys {
		keys[i] = r.Int()
	}

	return keys
}

func nonNegative(count int) int {
	if count < 0 {
		return 0
	}
	return count
}
