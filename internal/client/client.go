// Package client drives a mounted command file: write a command, read back the response line and parse it.
package client

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gostonefire/mchashbrowns/crt"
	"github.com/gostonefire/mchashbrowns/internal/conf"
)

// Response statuses
const (
	StatusReady = "READY"
	StatusOK    = conf.ResultOK
	StatusError = conf.ResultError
)

// Response - A parsed response line
//   - Status is one of StatusReady, StatusOK or StatusError
//   - Seconds is the time taken, only set for StatusOK
//   - Reason is the failure reason, only set for StatusError
//   - Raw is the response as read from the file
type Response struct {
	Status  string
	Seconds float64
	Reason  string
	Raw     string
}

// RaceResult - Timings of one INSERT_SEQ followed by LOOKUP_SEQ of the same count
type RaceResult struct {
	Count         int64
	InsertSeconds float64
	LookupSeconds float64
}

// Client - Talks to the command file at Path
type Client struct {
	Path string
}

// New - Returns a client for the command file of the filesystem mounted at mountpoint
func New(mountpoint string) Client {
	return Client{Path: filepath.Join(mountpoint, conf.FileName)}
}

// Send - Performs one protocol cycle. The file is opened write-only for the command and then read-only for the
// response, so each step reaches the filesystem as its own request.
// An ERROR response is returned together with a crt.CommandFailed error.
func (C Client) Send(command string) (resp Response, err error) {
	if err = C.write(command); err != nil {
		return
	}

	raw, err := C.read()
	if err != nil {
		return
	}

	resp, err = Parse(raw)
	if err != nil {
		return
	}

	if resp.Status == StatusError {
		err = crt.CommandFailed{Command: command, Reason: resp.Reason}
	}

	return
}

// Result - Reads the current response without sending a command
func (C Client) Result() (resp Response, err error) {
	raw, err := C.read()
	if err != nil {
		return
	}

	return Parse(raw)
}

// Race - Builds a table of count records and looks all of them up, returning the time of both steps
func (C Client) Race(count int64) (result RaceResult, err error) {
	result.Count = count

	insert, err := C.Send(fmt.Sprintf("%s %d", conf.CmdInsertSeq, count))
	if err != nil {
		err = fmt.Errorf("error while building table: %w", err)
		return
	}
	result.InsertSeconds = insert.Seconds

	lookup, err := C.Send(fmt.Sprintf("%s %d", conf.CmdLookupSeq, count))
	if err != nil {
		err = fmt.Errorf("error while looking up records: %w", err)
		return
	}
	result.LookupSeconds = lookup.Seconds

	return
}

func (C Client) write(command string) (err error) {
	f, err := os.OpenFile(C.Path, os.O_WRONLY, 0)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = f.Write([]byte(command))

	return
}

func (C Client) read() (raw string, err error) {
	f, err := os.Open(C.Path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, conf.ReadChunkSize)
	n, err := f.Read(buf)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	raw = string(buf[:n])

	return
}

// Parse - Parses a response line, the trailing newline is optional
func Parse(raw string) (resp Response, err error) {
	resp.Raw = raw
	line := strings.TrimSuffix(raw, "\n")

	status, rest, _ := strings.Cut(line, " ")
	switch status {
	case StatusReady:
		if rest == "" {
			resp.Status = StatusReady
			return
		}
	case StatusOK:
		seconds, parseErr := strconv.ParseFloat(rest, 64)
		if parseErr == nil && seconds >= 0 {
			resp.Status = StatusOK
			resp.Seconds = seconds
			return
		}
	case StatusError:
		if rest != "" {
			resp.Status = StatusError
			resp.Reason = rest
			return
		}
	}

	err = crt.MalformedResponse{Raw: raw}

	return
}
