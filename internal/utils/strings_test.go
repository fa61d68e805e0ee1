package utils

import "testing"

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"4 people", 4},
		{"+2", 2},
		{"-5", -5},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"2.9", 2},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := ParseLeadingInt(tc.in); got != tc.want {
			t.Fatalf("ParseLeadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Asha \t  Rao "); got != "Asha Rao" {
		t.Fatalf("NormalizeSpace = %q", got)
	}
}
