package model

// TableStat - Statistics on the overall usage and distribution over buckets of a hash table
//   - Records is the total number of records stored
//   - Buckets is the number of buckets in the table
//   - UsedBuckets is the number of buckets having at least one record in its chain
//   - LongestChain is the length of the longest chain found
//   - AverageChainLength is Records divided by Buckets
//   - BucketDistribution is the number of records stored in each bucket, nil unless asked for
type TableStat struct {
	Records            int     `json:"records"`
	Buckets            int     `json:"buckets"`
	UsedBuckets        int     `json:"used_buckets"`
	LongestChain       int     `json:"longest_chain"`
	AverageChainLength float64 `json:"average_chain_length"`
	BucketDistribution []int   `json:"bucket_distribution,omitempty"`
}

// BenchmarkResult - Outcome of one benchmark driver run
//   - Operations is the number of operations the workload consisted of
//   - TotalTime is the process CPU time in seconds spent in the timed workload loop
//   - SuccessfulOps is the number of operations that succeeded
//   - FailedOps is the number of operations refused by the table, misses in the mixed workload are not counted
type BenchmarkResult struct {
	Operations    int     `json:"operations"`
	TotalTime     float64 `json:"total_time_seconds"`
	SuccessfulOps int     `json:"successful_ops"`
	FailedOps     int     `json:"failed_ops"`
}
