package frier

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gostonefire/mchashbrowns/internal/conf"
)

// command - A parsed command file command
type command struct {
	keyword string
	count   int64
}

// keywords - Commands in the order they are tried against the input
var keywords = []string{conf.CmdInsertSeq, conf.CmdLookupSeq}

// parseCommand - Parses a keyword immediately followed by optional whitespace and a decimal integer with optional
// sign. Anything after the integer is ignored. It returns false if no keyword matches or the integer is missing or
// does not fit in 64 bits.
func parseCommand(input []byte) (cmd command, ok bool) {
	for _, keyword := range keywords {
		rest, found := bytes.CutPrefix(input, []byte(keyword))
		if !found {
			continue
		}

		count, parsed := parseInteger(rest)
		if !parsed {
			continue
		}

		cmd = command{keyword: keyword, count: count}
		ok = true

		return
	}

	return
}

// parseInteger - Skips leading white space and parses an optionally signed run of decimal digits
func parseInteger(b []byte) (n int64, ok bool) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}

	digits := i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	if i == digits {
		return
	}

	n, err := strconv.ParseInt(string(b[start:i]), 10, 64)
	if err != nil {
		return
	}
	ok = true

	return
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// okLine - Formats a successful response with the time taken in seconds
func okLine(seconds float64) string {
	return fmt.Sprintf("%s %.6f\n", conf.ResultOK, seconds)
}

// errorLine - Formats a failed response with its reason
func errorLine(reason string) string {
	return fmt.Sprintf("%s %s\n", conf.ResultError, reason)
}
