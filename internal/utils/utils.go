package utils

// BucketCount - Returns the number of buckets to use for an expected number of records, which is half the
// number of records but never less than minBuckets. A negative number of records gives minBuckets.
func BucketCount(records, minBuckets int) int {
	buckets := records / 2
	if buckets < minBuckets {
		buckets = minBuckets
	}

	return buckets
}

// Truncate - Returns b limited to at most limit bytes and cut at the first NUL byte, the way a C string
// copied into a fixed size buffer would be read back.
func Truncate(b []byte, limit int) []byte {
	if limit >= 0 && len(b) > limit {
		b = b[:limit]
	}

	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}

	return b
}
