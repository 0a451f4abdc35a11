package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brandonbloom/rwfile/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	colorHeading = newColor(color.FgBlue, color.Bold)
	colorDivider = newColor(color.FgHiBlack)
	colorPrompt  = newColor(color.Bold)
	colorWarn    = newColor(color.FgYellow)
	colorSuccess = newColor(color.FgGreen, color.Bold)
)

// newColor returns a color that ignores the package-level NoColor switch;
// ui decides on its own whether to paint.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

type ui struct {
	out      io.Writer
	useColor bool
}

func newUI(out io.Writer, mode config.ColorMode) *ui {
	return &ui{out: out, useColor: colorEnabled(mode, writerIsTerminal(out))}
}

func colorEnabled(mode config.ColorMode, terminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return terminal
	}
}

func (u *ui) paint(c *color.Color, s string) string {
	if !u.useColor {
		return s
	}
	return c.Sprint(s)
}

// heading names the target file. It is only shown on styled output so that
// plain transcripts stay unchanged.
func (u *ui) heading(path string) {
	if !u.useColor {
		return
	}
	title := "rwfile: " + path
	fmt.Fprintf(u.out, "%s\n%s\n", u.paint(colorHeading, title), u.paint(colorDivider, divider(title)))
}

func (u *ui) prompt(s string) {
	fmt.Fprintln(u.out, u.paint(colorPrompt, s))
}

func (u *ui) warn(s string) {
	fmt.Fprintln(u.out, u.paint(colorWarn, s))
}

func (u *ui) success(s string) {
	fmt.Fprintln(u.out, u.paint(colorSuccess, s))
}

// divider underlines title, measured in terminal cells and clamped to 40..80.
func divider(title string) string {
	width := runewidth.StringWidth(title)
	if width < 40 {
		width = 40
	}
	if width > 80 {
		width = 80
	}
	return strings.Repeat("-", width)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
