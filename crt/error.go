// Package crt holds the errors returned to clients of the command file.
package crt

import "fmt"

// CommandFailed - Custom error to inform that the command file answered a command with an ERROR line
type CommandFailed struct {
	Command string
	Reason  string
}

// Error - Used to notify that a command was refused
func (C CommandFailed) Error() string {
	return fmt.Sprintf("command %q failed: %s", C.Command, C.Reason)
}

// Is - Makes errors.Is match any CommandFailed, or one with the same reason if the target carries a reason
func (C CommandFailed) Is(target error) bool {
	t, ok := target.(CommandFailed)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == C.Reason
}

// MalformedResponse - Custom error to inform that the command file returned something that is not a response line
type MalformedResponse struct {
	Raw string
}

// Error - Used to notify that a response could not be parsed
func (M MalformedResponse) Error() string {
	return fmt.Sprintf("malformed response %q", M.Raw)
}

// Is - Makes errors.Is match any MalformedResponse
func (M MalformedResponse) Is(target error) bool {
	_, ok := target.(MalformedResponse)
	return ok
}
