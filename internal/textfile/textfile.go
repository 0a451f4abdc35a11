package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Kind classifies why an operation on the target file failed.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o"
	}
}

// Op names the step that failed.
type Op string

const (
	OpOpen       Op = "open"
	OpRead       Op = "read"
	OpOpenAppend Op = "open for append"
	OpWrite      Op = "write"
)

// ErrInvalidUTF8 is returned when a line read from the file is not text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Error records a failed operation on a file together with its Kind.
type Error struct {
	Op   Op
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify maps an error from the os package onto a Kind.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindIO
	}
}

// Read streams the file at path to w one line at a time and returns the
// number of lines written.
func Read(path string, w io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &Error{Op: OpOpen, Path: path, Kind: Classify(err), Err: err}
	}
	defer f.Close()

	n, err := CopyLines(w, f)
	if err != nil {
		return n, &Error{Op: OpRead, Path: path, Kind: Classify(err), Err: err}
	}
	return n, nil
}

// CopyLines copies r to w line by line. Every line is terminated with "\n"
// on output, including a final line that had no terminator; "\r\n" endings
// are normalized. Lines must be valid UTF-8.
func CopyLines(w io.Writer, r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = trimLineEnding(line)
			if !utf8.ValidString(line) {
				return n, ErrInvalidUTF8
			}
			if _, werr := io.WriteString(w, line+"\n"); werr != nil {
				return n, werr
			}
			n++
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

func trimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}

// Append adds text to the end of the file at path, creating the file with
// mode 0644 when it does not exist. Existing content is never truncated.
func Append(path, text string) (int, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, &Error{Op: OpOpenAppend, Path: path, Kind: Classify(err), Err: err}
	}

	n, err := io.WriteString(f, text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		kind := Classify(err)
		if kind == KindNotFound {
			kind = KindIO
		}
		return n, &Error{Op: OpWrite, Path: path, Kind: kind, Err: err}
	}
	return n, nil
}
