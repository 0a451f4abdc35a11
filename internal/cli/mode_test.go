package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want mode
		ok   bool
	}{
		{"r\n", modeRead, true},
		{"w\n", modeWrite, true},
		{"  w \t\r\n", modeWrite, true},
		{"r", modeRead, true},
		{"R\n", "", false},
		{"rw\n", "", false},
		{"read\n", "", false},
		{"\n", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := parseMode(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseMode(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPromptModeStopsAtFirstValidAnswer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("nope\nw\nleftover\n"))
	got, err := promptMode(in, &ui{out: &out}, "pick:")
	if err != nil {
		t.Fatalf("promptMode returned error: %v", err)
	}
	if got != modeWrite {
		t.Fatalf("promptMode = %q, want %q", got, modeWrite)
	}
	if want := "pick:\nInvalid input.\npick:\n"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	rest, _ := in.ReadString('\n')
	if rest != "leftover\n" {
		t.Fatalf("promptMode consumed too much input; next line = %q", rest)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestPromptModeInputErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := promptMode(bufio.NewReader(failingReader{boom}), &ui{out: &bytes.Buffer{}}, "pick:")
	if !errors.Is(err, boom) {
		t.Fatalf("promptMode error = %v, want %v", err, boom)
	}

	_, err = promptMode(bufio.NewReader(strings.NewReader("")), &ui{out: &bytes.Buffer{}}, "pick:")
	if !errors.Is(err, errNoMode) {
		t.Fatalf("promptMode error = %v, want errNoMode", err)
	}
}
