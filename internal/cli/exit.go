package cli

import (
	"errors"
	"fmt"

	"github.com/brandonbloom/rwfile/internal/textfile"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitIO         = 1
	ExitNotFound   = 2
	ExitPermission = 3
	ExitUsage      = 4
)

// exitError carries the process exit code for a failure along with the
// message printed to stderr.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by the root command onto an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitIO
}

func usageError(name string, cause error) error {
	msg := fmt.Sprintf("Usage: %s <file_path>", name)
	if cause != nil {
		msg = fmt.Sprintf("%v\n%s", cause, msg)
	}
	return &exitError{code: ExitUsage, msg: msg}
}

func inputError(err error) error {
	return &exitError{code: ExitIO, msg: "Error reading input", err: err}
}

func kindExitCode(kind textfile.Kind) int {
	switch kind {
	case textfile.KindNotFound:
		return ExitNotFound
	case textfile.KindPermission:
		return ExitPermission
	default:
		return ExitIO
	}
}

var opMessages = map[textfile.Op]string{
	textfile.OpOpen:       "Error opening file",
	textfile.OpRead:       "Error reading file",
	textfile.OpOpenAppend: "Failed to open file for writing",
	textfile.OpWrite:      "Error writing to file",
}

// fileError wraps a textfile failure with the message for the failed step.
// Other errors are returned as-is and exit with ExitIO.
func fileError(err error) error {
	var ferr *textfile.Error
	if !errors.As(err, &ferr) {
		return err
	}
	return &exitError{code: kindExitCode(ferr.Kind), msg: opMessages[ferr.Op], err: ferr}
}
