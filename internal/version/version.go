package version

import (
	"regexp"
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// pseudoVersion matches the suffix Go appends to untagged module versions,
// for example v0.0.0-20250101120000-abcdef123456.
var pseudoVersion = regexp.MustCompile(`(^|[-.])\d{14}-[0-9A-Fa-f]{12,}$`)

// String reports the module version recorded in the build info, or
// "(devel)" for local, dirty, or untagged builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return normalize(info.Main.Version)
}

func normalize(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") {
		return devel
	}
	base, _, _ := strings.Cut(v, "+")
	if pseudoVersion.MatchString(base) {
		return devel
	}
	return v
}
