package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/brandonbloom/rwfile/internal/config"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// newLogger returns a slog logger writing human-readable records to w.
func newLogger(w io.Writer, level slog.Level, mode config.ColorMode) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !colorEnabled(mode, fdIsTerminal(w)),
	}))
}

func fdIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
