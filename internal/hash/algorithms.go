package hash

import (
	"fmt"
	"sort"

	"github.com/gostonefire/mchashbrowns/hashfunc"
)

// Names of the bucket selection algorithms that can be chosen by configuration
const (
	Knuth  = "knuth"
	CRC32  = "crc32"
	XXHash = "xxhash"
)

var constructors = map[string]func(tableSize int64) hashfunc.HashAlgorithm{
	Knuth:  func(tableSize int64) hashfunc.HashAlgorithm { return NewKnuthHashAlgorithm(tableSize) },
	CRC32:  func(tableSize int64) hashfunc.HashAlgorithm { return NewCRC32HashAlgorithm(tableSize) },
	XXHash: func(tableSize int64) hashfunc.HashAlgorithm { return NewXXHashAlgorithm(tableSize) },
}

// UnknownAlgorithm - Custom error to inform that a hash algorithm name is not known
type UnknownAlgorithm struct {
	Name string
}

// Error - Used to notify that the algorithm name is not known
func (U UnknownAlgorithm) Error() string {
	return fmt.Sprintf("unknown hash algorithm %q, valid names are %v", U.Name, Names())
}

// Is - Makes errors.Is match any UnknownAlgorithm
func (U UnknownAlgorithm) Is(target error) bool {
	_, ok := target.(UnknownAlgorithm)
	return ok
}

// ByName - Returns a new instance of the named bucket selection algorithm prepared for tableSize buckets.
// An empty name gives the Knuth algorithm.
func ByName(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	if name == "" {
		name = Knuth
	}

	constructor, ok := constructors[name]
	if !ok {
		err = UnknownAlgorithm{Name: name}
		return
	}

	hashAlgorithm = constructor(tableSize)

	return
}

// Names - Returns the sorted names of all available algorithms
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
