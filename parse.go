package aoc

import (
	"reflect"
	"strconv"
	"strings"
)

// Lines splits input into lines. A single trailing newline is ignored, so
// "a\nb\n" and "a\nb" both yield two lines, and "" yields none. Carriage
// returns before a newline are dropped.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ParseUint32 parses s as a base 10 uint32.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
