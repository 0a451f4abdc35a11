package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

type mode string

const (
	modeRead  mode = "r"
	modeWrite mode = "w"
)

// errNoMode reports that input ended before a valid mode was entered.
var errNoMode = errors.New("input ended before a mode was selected")

func parseMode(resp string) (mode, bool) {
	switch m := mode(strings.TrimSpace(resp)); m {
	case modeRead, modeWrite:
		return m, true
	default:
		return "", false
	}
}

// promptMode asks for a mode until the response is exactly "r" or "w" after
// trimming whitespace.
func promptMode(in *bufio.Reader, u *ui, prompt string) (mode, error) {
	for {
		u.prompt(prompt)
		resp, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if m, ok := parseMode(resp); ok {
			return m, nil
		}
		if err != nil {
			return "", errNoMode
		}
		u.warn("Invalid input.")
	}
}
