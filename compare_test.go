package strq_test

import (
	"testing"

	"deedles.dev/strq"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"banana", "Banana", 0},
		{"BANANA", "banana", 0},
		{"Apple", "banana", -1},
		{"cherry", "Banana", 1},
		{"ab", "abc", -1},
		{"[", "a", -1}, // '[' sits between 'Z' and 'a'
		{"[", "A", -1},
		{"é", "É", 1}, // no folding outside ASCII
	}
	for _, test := range tests {
		if got := strq.Compare(test.a, test.b); got != test.want {
			t.Errorf("Compare(%q, %q) = %v, want %v", test.a, test.b, got, test.want)
		}
		if got := strq.Compare(test.b, test.a); got != -test.want {
			t.Errorf("Compare(%q, %q) = %v, want %v", test.b, test.a, got, -test.want)
		}
	}
}
