package cli

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/brandonbloom/rwfile/internal/textfile"
)

func TestExitCode(t *testing.T) {
	notFound := &textfile.Error{Op: textfile.OpOpen, Path: "a", Kind: textfile.KindNotFound, Err: fs.ErrNotExist}
	denied := &textfile.Error{Op: textfile.OpWrite, Path: "a", Kind: textfile.KindPermission, Err: fs.ErrPermission}
	broken := &textfile.Error{Op: textfile.OpRead, Path: "a", Kind: textfile.KindIO, Err: textfile.ErrInvalidUTF8}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", errors.New("boom"), ExitIO},
		{"usage", usageError("rwfile", nil), ExitUsage},
		{"input", inputError(errors.New("closed")), ExitIO},
		{"notFound", fileError(notFound), ExitNotFound},
		{"permission", fileError(denied), ExitPermission},
		{"io", fileError(broken), ExitIO},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestFileErrorMessages(t *testing.T) {
	cases := []struct {
		op   textfile.Op
		want string
	}{
		{textfile.OpOpen, "Error opening file: open a: boom"},
		{textfile.OpRead, "Error reading file: read a: boom"},
		{textfile.OpOpenAppend, "Failed to open file for writing: open for append a: boom"},
		{textfile.OpWrite, "Error writing to file: write a: boom"},
	}
	for _, tc := range cases {
		err := fileError(&textfile.Error{Op: tc.op, Path: "a", Err: errors.New("boom")})
		if got := err.Error(); got != tc.want {
			t.Fatalf("fileError(%s) = %q, want %q", tc.op, got, tc.want)
		}
	}
}

func TestUsageErrorIncludesCause(t *testing.T) {
	err := usageError("rwfile", errors.New("unknown flag: --x"))
	const want = "unknown flag: --x\nUsage: rwfile <file_path>"
	if got := err.Error(); got != want {
		t.Fatalf("usageError = %q, want %q", got, want)
	}
}

func TestFileErrorPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	if got := fileError(boom); got != boom {
		t.Fatalf("fileError(%v) = %v, want the same error", boom, got)
	}
	if code := ExitCode(fileError(boom)); code != ExitIO {
		t.Fatalf("ExitCode = %d, want %d", code, ExitIO)
	}
}
