// mcfrier-shell is an interactive client for a mounted mcfrier filesystem.
//
// Usage:
//
//	mcfrier-shell <mountpoint>
//
// Commands (in REPL):
//
//	INSERT_SEQ <n>     Build a table of n records
//	LOOKUP_SEQ <n>     Look up n records in the current table
//	race <n>...        Insert and look up n records, for each n
//	result             Show the current response
//	help               Show this help
//	exit / quit / q    Exit
//
// Any other line is written to the command file as is.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/gostonefire/mchashbrowns/internal/client"
	"github.com/gostonefire/mchashbrowns/internal/conf"
)

const prompt = "mcfrier> "

func main() {
	err := run(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("mcfrier-shell", flag.ContinueOnError)
	flagSet.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: mcfrier-shell <mountpoint>")
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return errors.New("missing mount point")
	}

	c := client.New(flagSet.Arg(0))
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("no command file at %s: %w", c.Path, err)
	}

	r := &REPL{client: c, out: os.Stdout}

	return r.Run()
}

// REPL - The interactive command loop
type REPL struct {
	client client.Client
	out    io.Writer
	liner  *liner.State
}

// historyFile - Returns the path to the history file
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".mcfrier_history")
}

// Run - Starts the loop and returns when the user quits
func (R *REPL) Run() error {
	R.liner = liner.NewLiner()
	defer R.liner.Close()

	R.liner.SetCtrlCAborts(true)
	R.liner.SetCompleter(completer)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = R.liner.ReadHistory(f)
		_ = f.Close()
	}
	defer R.saveHistory()

	_, _ = fmt.Fprintf(R.out, "mcfrier-shell on %s\n", R.client.Path)
	_, _ = fmt.Fprintln(R.out, "Type 'help' for available commands.")

	for {
		line, err := R.liner.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(R.out)
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		R.liner.AppendHistory(line)

		if R.Execute(line) {
			return nil
		}
	}
}

// Execute - Runs one input line, returns true when the user asked to quit
func (R *REPL) Execute(line string) (quit bool) {
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case "exit", "quit", "q":
		quit = true
	case "help", "?":
		R.printHelp()
	case "result":
		R.cmdResult()
	case "race":
		R.cmdRace(parts[1:])
	default:
		R.cmdSend(line)
	}

	return
}

func (R *REPL) cmdSend(line string) {
	resp, err := R.client.Send(line)
	if err != nil && resp.Status == "" {
		_, _ = fmt.Fprintf(R.out, "error: %v\n", err)
		return
	}

	_, _ = fmt.Fprint(R.out, resp.Raw)
}

func (R *REPL) cmdResult() {
	resp, err := R.client.Result()
	if err != nil {
		_, _ = fmt.Fprintf(R.out, "error: %v\n", err)
		return
	}

	_, _ = fmt.Fprint(R.out, resp.Raw)
}

func (R *REPL) cmdRace(args []string) {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(R.out, "usage: race <n>...")
		return
	}

	_, _ = fmt.Fprintf(R.out, "%12s %12s %12s\n", "records", "insert (s)", "lookup (s)")
	for _, arg := range args {
		count, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || count < 0 {
			_, _ = fmt.Fprintf(R.out, "error: invalid record count %q\n", arg)
			return
		}

		result, err := R.client.Race(count)
		if err != nil {
			_, _ = fmt.Fprintf(R.out, "error: %v\n", err)
			return
		}

		_, _ = fmt.Fprintf(R.out, "%12d %12.6f %12.6f\n", result.Count, result.InsertSeconds, result.LookupSeconds)
	}
}

func (R *REPL) printHelp() {
	_, _ = fmt.Fprintf(R.out, `Commands:
  %s <n>     Build a table of n records
  %s <n>     Look up n records in the current table
  race <n>...        Insert and look up n records, for each n
  result             Show the current response
  help               Show this help
  exit / quit / q    Exit
`, conf.CmdInsertSeq, conf.CmdLookupSeq)
}

// saveHistory - Persists command history to disk
func (R *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = R.liner.WriteHistory(f)
			_ = f.Close()
		}
	}
}

// completer - Completes command words
func completer(line string) (c []string) {
	for _, word := range []string{conf.CmdInsertSeq + " ", conf.CmdLookupSeq + " ", "race ", "result", "help", "quit"} {
		if strings.HasPrefix(word, line) {
			c = append(c, word)
		}
	}

	return
}
