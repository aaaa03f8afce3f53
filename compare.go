package strq

import "cmp"

// Compare compares a and b byte by byte, ignoring the case of ASCII
// letters. Bytes outside of A-Z are compared as they are, so no
// Unicode case folding happens. If one string is a prefix of the
// other, the shorter one is less.
//
// The result is -1 if a < b, 1 if a > b, and 0 otherwise.
func Compare(a, b string) int {
	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(lower(a[i]), lower(b[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
