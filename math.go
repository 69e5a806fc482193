package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// SumFunc returns the sum of f applied to each element of in.
func SumFunc[T any, N Number](in []T, f func(T) N) N {
	return Fold(in, func(acc N, v T) N { return acc + f(v) }, 0)
}

// Fold folds in from left to right, starting at defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the digit value of the rune.
// It panics if r is not a decimal digit.
func Digit[T byte | rune](r T) int {
	if !IsDigit(r) {
		panic(fmt.Sprintf("not a digit: %q", rune(r)))
	}
	return int(r - '0')
}
