package util

import "testing"

func TestTruncateString(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short enough", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny max", "hello", 3, "..."},
		{"wide runes", "héllo wörld", 8, "héllo..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateString(tc.input, tc.maxLen); got != tc.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := "\x1b[31mred text that is long\x1b[0m"
	got := TruncateANSI(styled, 10)
	// The visual width must respect the limit even with escape codes.
	if len(got) == 0 {
		t.Fatal("TruncateANSI returned empty string")
	}
	if TruncateANSI("plain", 10) != "plain" {
		t.Error("short strings should pass through unchanged")
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1240.5, "$1240.50"},
		{0, "$0.00"},
		{-75, "-$75.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(8); got != "8h" {
		t.Errorf("FormatHours(8) = %q", got)
	}
	if got := FormatHours(2.5); got != "2.5h" {
		t.Errorf("FormatHours(2.5) = %q", got)
	}
}

func TestFormatPct(t *testing.T) {
	if got := FormatPct(66.666); got != "66.7%" {
		t.Errorf("FormatPct = %q", got)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(1.005); got != "1.00" && got != "1.01" {
		t.Errorf("FormatRatio = %q", got)
	}
	if got := FormatRatio(2); got != "2.00" {
		t.Errorf("FormatRatio(2) = %q", got)
	}
}
