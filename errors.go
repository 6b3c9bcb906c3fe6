package mchashbrowns

import "fmt"

// AllocationRefused - Custom error to inform that a hash table could not be allocated with the requested
// number of buckets. The hash table is absent when this error is returned.
type AllocationRefused struct {
	BucketCount int
}

// Error - Used to notify that the table could not be allocated
func (A AllocationRefused) Error() string {
	return fmt.Sprintf("can not allocate hash table with %d buckets, must be between 1 and %d", A.BucketCount, MaxBucketCount)
}

// Is - Makes errors.Is match any AllocationRefused regardless of bucket count
func (A AllocationRefused) Is(target error) bool {
	_, ok := target.(AllocationRefused)
	return ok
}

// HashAlgorithmMismatch - Custom error to inform that a supplied hash algorithm does not address the
// requested number of buckets
type HashAlgorithmMismatch struct {
	BucketCount int64
	TableSize   int64
}

// Error - Used to notify that the hash algorithm table size is wrong
func (H HashAlgorithmMismatch) Error() string {
	return fmt.Sprintf("hash algorithm addresses %d buckets but the table has %d", H.TableSize, H.BucketCount)
}

// Is - Makes errors.Is match any HashAlgorithmMismatch
func (H HashAlgorithmMismatch) Is(target error) bool {
	_, ok := target.(HashAlgorithmMismatch)
	return ok
}
