package conf

// FileName - Name of the single command file under the root of the mounted filesystem
const FileName string = "mcfrier"

// FilePath - Path of the command file as seen by the filesystem callbacks
const FilePath string = "/" + FileName

// RootPath - Path of the root directory as seen by the filesystem callbacks
const RootPath string = "/"

// InitialResult - Content of the result buffer before any command has been written
const InitialResult string = "READY\n"

// MinResultBufferSize - Least capacity of the result buffer in bytes
const MinResultBufferSize int = 512

// CommandLimit - Number of bytes of a write payload that are inspected as command
const CommandLimit int = 255

// ReadChunkSize - Number of bytes a client reads back from the command file
const ReadChunkSize int = 512

// DefaultMinBuckets - Least number of buckets of a table created by INSERT_SEQ
const DefaultMinBuckets int = 100

// DefaultMaxBuckets - Largest number of buckets a table created by INSERT_SEQ may have before creation is refused
const DefaultMaxBuckets int = 1 << 30

// DefaultDiagnosticPrefix - Prefix of the diagnostic lines written for each successful command
const DefaultDiagnosticPrefix string = "[C-FUSE]"

// DefaultFSName - File system name shown in the mount table
const DefaultFSName string = "mcfrier"

// ConfigFileName - Name of the project config file looked for in the working directory
const ConfigFileName string = ".mcfrier.json"

// Command keywords of the command file protocol
const (
	CmdInsertSeq = "INSERT_SEQ"
	CmdLookupSeq = "LOOKUP_SEQ"
)

// Result lines of the command file protocol
const (
	ResultOK             = "OK"
	ResultError          = "ERROR"
	ReasonOOMCreate      = "OOM_CREATE"
	ReasonNoTable        = "NO_TABLE"
	ReasonInvalidCommand = "INVALID_CMD"
)
