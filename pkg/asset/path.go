package asset

import "strings"

// prefixSeparator splits a fully-qualified path into prefix and relative
// path, as in "sprites:/ui/button".
const prefixSeparator = ":/"

// NormalizePath converts backslashes to forward slashes and strips leading
// slashes. Normalization is idempotent: applying it twice equals applying
// it once. Cache keys are always normalized, so two spellings of the same
// path resolve to the same entry.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimLeft(p, "/")
}

// SplitPath parses a fully-qualified path into its prefix and normalized
// relative path. A path containing ":/" splits at the first occurrence;
// anything else has an empty prefix and is treated as a bare relative
// path.
//
//	SplitPath("sprites:/ui/button") = ("sprites", "ui/button")
//	SplitPath("/ui/button")         = ("", "ui/button")
func SplitPath(full string) (prefix, rel string) {
	if before, after, ok := strings.Cut(full, prefixSeparator); ok {
		return before, NormalizePath(after)
	}
	return "", NormalizePath(full)
}
