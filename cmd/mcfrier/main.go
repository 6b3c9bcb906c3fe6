// mcfrier mounts a filesystem holding the single command file "mcfrier". Writing INSERT_SEQ <n> or
// LOOKUP_SEQ <n> to it runs the command against an in-memory hash table, reading it returns the outcome.
//
// Usage:
//
//	mcfrier [options] <mountpoint>
//
// Options:
//
//	-c, --config        Config file (default: .mcfrier.json in the working directory)
//	    --hash          Bucket selection algorithm: crc32, knuth or xxhash
//	    --min-buckets   Least number of buckets of a table
//	    --max-buckets   Largest number of buckets before creation is refused
//	    --fsname        File system name shown in the mount table
//	    --allow-other   Allow other users to access the mount
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/gostonefire/mchashbrowns/internal/conf"
	"github.com/gostonefire/mchashbrowns/internal/frier"
	"github.com/gostonefire/mchashbrowns/internal/fusefs"
)

var errMountpointRequired = errors.New("mount point is required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, env map[string]string, out io.Writer, errOut io.Writer) int {
	logger := log.New(errOut, "mcfrier: ", log.LstdFlags)

	flagSet := flag.NewFlagSet("mcfrier", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	configPath := flagSet.StringP("config", "c", "", "Config file")
	hashAlgorithm := flagSet.String("hash", "", "Bucket selection algorithm")
	minBuckets := flagSet.Int("min-buckets", 0, "Least number of buckets of a table")
	maxBuckets := flagSet.Int("max-buckets", 0, "Largest number of buckets before creation is refused")
	fsName := flagSet.String("fsname", "", "File system name shown in the mount table")
	allowOther := flagSet.Bool("allow-other", false, "Allow other users to access the mount")
	help := flagSet.BoolP("help", "h", false, "Show help")

	if err := flagSet.Parse(args); err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if *help {
		printUsage(out, flagSet)
		return 0
	}

	if flagSet.NArg() != 1 {
		_, _ = fmt.Fprintln(errOut, "error:", errMountpointRequired)
		printUsage(errOut, flagSet)
		return 1
	}
	mountpoint := flagSet.Arg(0)

	cfg, err := conf.LoadConfig(conf.LoadConfigInput{
		ConfigPath: *configPath,
		Env:        env,
		Overrides: conf.Config{
			HashAlgorithm: *hashAlgorithm,
			MinBuckets:    *minBuckets,
			MaxBuckets:    *maxBuckets,
			FSName:        *fsName,
			AllowOther:    *allowOther,
		},
	})
	if err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if cfg.Sources.Global != "" {
		logger.Printf("loaded global config %s", cfg.Sources.Global)
	}
	if cfg.Sources.Project != "" {
		logger.Printf("loaded config %s", cfg.Sources.Project)
	}

	adapter, err := frier.New(cfg, out)
	if err != nil {
		_, _ = fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	logger.Printf("hash algorithm %s, buckets %d..%d", cfg.HashAlgorithm, cfg.MinBuckets, cfg.MaxBuckets)

	err = fusefs.Mount(ctx, mountpoint, adapter, fusefs.Options{FSName: cfg.FSName, AllowOther: cfg.AllowOther}, logger)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	logger.Printf("unmounted %s", mountpoint)

	return 0
}

func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	_, _ = fmt.Fprintln(w, "Usage: mcfrier [options] <mountpoint>")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprint(w, flagSet.FlagUsages())
}

// environ - Returns the process environment as a map
func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}
