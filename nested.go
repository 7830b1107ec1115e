package dyncol

import "strings"

// SplitName splits a dotted subcolumn path into its first segment and the
// remainder. "A.B.C" yields ("A", "B.C"); a path without a dot yields
// (path, "").
func SplitName(path string) (head, tail string) {
	head, tail, _ = strings.Cut(path, ".")
	return head, tail
}
