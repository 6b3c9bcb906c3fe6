// Package frier exposes a hash table through a single command file. Writes to the file carry textual commands
// that rebuild or query the table, reads return the outcome of the latest command as one line of ASCII.
//
// The Adapter implements the filesystem callbacks (getattr, open, read, write and readdir) independent of any
// particular FUSE binding. All callbacks are serialized by one mutex covering both the table and the result.
package frier

import (
	"io"
	"io/fs"
	"log"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/gostonefire/mchashbrowns"
	"github.com/gostonefire/mchashbrowns/internal/conf"
	"github.com/gostonefire/mchashbrowns/internal/cputime"
	"github.com/gostonefire/mchashbrowns/internal/hash"
	"github.com/gostonefire/mchashbrowns/internal/model"
	"github.com/gostonefire/mchashbrowns/internal/utils"
)

// Adapter - Owns the table handle and the result buffer of one mounted command file
type Adapter struct {
	mu            sync.Mutex
	table         *mchashbrowns.HashTable
	result        *resultBuffer
	diag          *log.Logger
	hashAlgorithm string
	minBuckets    int
	maxBuckets    int
	uid           uint32
	gid           uint32
}

// New - Returns a new Adapter with no table and the result buffer holding conf.InitialResult.
//   - cfg is the validated configuration, see conf.LoadConfig
//   - diag receives one diagnostic line per successful command, nil discards them
func New(cfg conf.Config, diag io.Writer) (adapter *Adapter, err error) {
	if _, err = hash.ByName(cfg.HashAlgorithm, 1); err != nil {
		return
	}

	if diag == nil {
		diag = io.Discard
	}

	bufferSize := cfg.ResultBufferSize
	if bufferSize < conf.MinResultBufferSize {
		bufferSize = conf.MinResultBufferSize
	}

	minBuckets := cfg.MinBuckets
	if minBuckets < 1 {
		minBuckets = conf.DefaultMinBuckets
	}

	maxBuckets := cfg.MaxBuckets
	if maxBuckets < 1 || maxBuckets > mchashbrowns.MaxBucketCount {
		maxBuckets = mchashbrowns.MaxBucketCount
	}

	prefix := cfg.DiagnosticPrefix
	if prefix != "" {
		prefix += " "
	}

	adapter = &Adapter{
		result:        newResultBuffer(bufferSize, conf.InitialResult),
		diag:          log.New(diag, prefix, 0),
		hashAlgorithm: cfg.HashAlgorithm,
		minBuckets:    minBuckets,
		maxBuckets:    maxBuckets,
		uid:           uint32(unix.Getuid()),
		gid:           uint32(unix.Getgid()),
	}

	return
}

// Getattr - Returns attributes of the root directory or the command file, whose size is the length of the
// current result. Any other path gives ENOENT.
func (A *Adapter) Getattr(path string) (attr model.Attr, err error) {
	A.mu.Lock()
	defer A.mu.Unlock()

	switch path {
	case conf.RootPath:
		attr = model.Attr{Mode: os.ModeDir | 0o755, Nlink: 2}
	case conf.FilePath:
		attr = model.Attr{Mode: 0o666, Nlink: 1, Size: uint64(A.result.len())}
	default:
		err = notFound("getattr", path)
		return
	}

	attr.Uid = A.uid
	attr.Gid = A.gid

	return
}

// Open - Accepts only the command file. It returns true for direct I/O so the host never caches content and
// every read reflects the current result.
func (A *Adapter) Open(path string) (directIO bool, err error) {
	if path != conf.FilePath {
		err = notFound("open", path)
		return
	}

	directIO = true

	return
}

// Read - Returns at most size bytes of the current result starting at offset, no bytes at end of file
func (A *Adapter) Read(path string, size int, offset int64) (data []byte, err error) {
	if path != conf.FilePath {
		err = notFound("read", path)
		return
	}

	A.mu.Lock()
	defer A.mu.Unlock()

	data = A.result.readAt(size, offset)

	return
}

// Write - Executes the command carried by data and replaces the result. Offset is ignored and only the first
// conf.CommandLimit bytes, up to any NUL byte, are inspected. The full length of data is always acknowledged.
func (A *Adapter) Write(path string, data []byte, offset int64) (written int, err error) {
	if path != conf.FilePath {
		err = notFound("write", path)
		return
	}

	A.mu.Lock()
	defer A.mu.Unlock()

	command := make([]byte, 0, conf.CommandLimit)
	command = append(command, utils.Truncate(data, conf.CommandLimit)...)

	A.result.set(A.execute(command))
	written = len(data)

	return
}

// Readdir - Lists the root directory
func (A *Adapter) Readdir(path string) (entries []model.Dirent, err error) {
	if path != conf.RootPath {
		err = notFound("readdir", path)
		return
	}

	entries = []model.Dirent{
		{Name: ".", IsDir: true},
		{Name: "..", IsDir: true},
		{Name: conf.FileName},
	}

	return
}

// Close - Releases the table, used when the filesystem is unmounted
func (A *Adapter) Close() {
	A.mu.Lock()
	defer A.mu.Unlock()

	A.table.Destroy()
	A.table = nil
}

// Result - Returns the current content of the result buffer
func (A *Adapter) Result() string {
	A.mu.Lock()
	defer A.mu.Unlock()

	return A.result.String()
}

// TableSize - Returns the number of records in the current table, 0 if there is none
func (A *Adapter) TableSize() int {
	A.mu.Lock()
	defer A.mu.Unlock()

	return A.table.Size()
}

// execute - Runs one command and returns the response line
func (A *Adapter) execute(input []byte) string {
	cmd, ok := parseCommand(input)
	if !ok {
		return errorLine(conf.ReasonInvalidCommand)
	}

	switch cmd.keyword {
	case conf.CmdInsertSeq:
		return A.insertSeq(cmd.count)
	case conf.CmdLookupSeq:
		return A.lookupSeq(cmd.count)
	}

	return errorLine(conf.ReasonInvalidCommand)
}

// insertSeq - Replaces the table with a new one of max(count/2, minBuckets) buckets and times inserting keys
// 0..count-1 with value key*2
func (A *Adapter) insertSeq(count int64) string {
	A.table.Destroy()
	A.table = nil

	buckets := utils.BucketCount(int(count), A.minBuckets)
	if buckets > A.maxBuckets {
		return errorLine(conf.ReasonOOMCreate)
	}

	hashAlgorithm, err := hash.ByName(A.hashAlgorithm, int64(buckets))
	if err != nil {
		return errorLine(conf.ReasonOOMCreate)
	}

	table, err := mchashbrowns.New(buckets, hashAlgorithm)
	if err != nil {
		return errorLine(conf.ReasonOOMCreate)
	}
	A.table = table

	var seconds float64
	if count > 0 {
		sw := cputime.Start()
		for i := int64(0); i < count; i++ {
			table.Insert(int32(i), int32(i*2))
		}
		seconds = sw.Seconds()
	}

	A.diag.Printf("Insert %d: %.6f s", count, seconds)

	return okLine(seconds)
}

// lookupSeq - Times looking up keys 0..count-1 in the current table, misses are not reported
func (A *Adapter) lookupSeq(count int64) string {
	if A.table == nil {
		return errorLine(conf.ReasonNoTable)
	}

	var seconds float64
	if count > 0 {
		sw := cputime.Start()
		for i := int64(0); i < count; i++ {
			A.table.Lookup(int32(i))
		}
		seconds = sw.Seconds()
	}

	A.diag.Printf("Lookup %d: %.6f s", count, seconds)

	return okLine(seconds)
}

// notFound - Returns the error given for any path other than the root and the command file
func notFound(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: unix.ENOENT}
}
