package conf

import "errors"

// Configuration errors, wrapped with the offending path or value
var (
	ErrConfigInvalid      = errors.New("invalid config")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrMinBuckets         = errors.New("min_buckets must be at least 1")
	ErrMaxBuckets         = errors.New("max_buckets must be between min_buckets and 1073741824")
	ErrResultBufferSize   = errors.New("result_buffer_size must be at least 512")
)
