package ds

import (
	"golang.org/x/exp/constraints"
)

func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareTuple compares (a1, a2) with (b1, b2) lexicographically.
func CompareTuple[T1 constraints.Ordered, T2 constraints.Ordered](a1 T1, a2 T2, b1 T1, b2 T2) int {
	if c := Compare(a1, b1); c != 0 {
		return c
	}
	return Compare(a2, b2)
}
