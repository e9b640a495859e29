package asset

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ui/button", "ui/button"},
		{"leading slash stripped", "/ui/button", "ui/button"},
		{"double leading slash stripped", "//ui/button", "ui/button"},
		{"backslashes converted", `ui\button`, "ui/button"},
		{"leading backslash", `\ui\button`, "ui/button"},
		{"empty", "", ""},
		{"only slashes", "///", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Fatalf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{
		"ui/button", "/ui/button", "//ui/button", `\\ui\button`,
		`mixed/sep\path`, "", "/", "a",
	}
	for _, in := range inputs {
		once := NormalizePath(in)
		twice := NormalizePath(once)
		if once != twice {
			t.Fatalf("NormalizePath not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantPrefix string
		wantRel    string
	}{
		{"prefixed", "sprites:/ui/button", "sprites", "ui/button"},
		{"bare with leading slash", "/ui/button", "", "ui/button"},
		{"bare without slash", "ui/button", "", "ui/button"},
		{"prefixed with extra slash", "sprites://ui/button", "sprites", "ui/button"},
		{"splits at first separator", "a:/b:/c", "a", "b:/c"},
		{"backslashes in relative part", `data:/levels\cave.level.json`, "data", "levels/cave.level.json"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, rel := SplitPath(tt.in)
			if prefix != tt.wantPrefix || rel != tt.wantRel {
				t.Fatalf("SplitPath(%q) = (%q, %q), want (%q, %q)", tt.in, prefix, rel, tt.wantPrefix, tt.wantRel)
			}
		})
	}
}
