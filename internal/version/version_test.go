package version

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "(devel)"},
		{"(devel)", "(devel)"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2.3-rc.1", "v1.2.3-rc.1"},
		{"v1.2.3+dirty", "(devel)"},
		{"v0.0.0-20250716020515-7a30fe114040", "(devel)"},
		{"v1.2.4-0.20250716020515-7a30fe114040", "(devel)"},
		{"v1.2.3-pre.0.20250716020515-7a30fe114040+incompatible", "(devel)"},
	}
	for _, tc := range cases {
		if got := normalize(tc.in); got != tc.want {
			t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
