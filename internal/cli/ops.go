package cli

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/brandonbloom/rwfile/internal/textfile"
)

func runRead(u *ui, logger *slog.Logger, path string) error {
	logger.Debug("opening file", "path", path, "op", textfile.OpOpen)
	lines, err := textfile.Read(path, u.out)
	if err != nil {
		logger.Debug("read failed", "path", path, "lines", lines, "err", err)
		return fileError(err)
	}
	logger.Info("file printed", "path", path, "lines", lines)
	return nil
}

// runWrite captures one line, keeping its newline, and appends it to path.
// Input that ends without a newline is appended as-is.
func runWrite(in *bufio.Reader, u *ui, logger *slog.Logger, path, prompt string) error {
	u.prompt(prompt)
	text, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return inputError(err)
	}

	logger.Debug("opening file", "path", path, "op", textfile.OpOpenAppend)
	n, err := textfile.Append(path, text)
	if err != nil {
		return fileError(err)
	}
	logger.Info("text appended", "path", path, "bytes", n)
	u.success("Data written successfully!")
	return nil
}
