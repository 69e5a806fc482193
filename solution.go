package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the variant held by a Solution.
type Kind uint8

const (
	KindNone Kind = iota
	KindU32
	KindU64
	KindI64
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI64:
		return "i64"
	case KindStr:
		return "str"
	}
	return "none"
}

// Solution is the answer to one part of a puzzle. The zero value holds no
// answer. Solutions are comparable with ==; two Solutions are equal only
// if they hold the same variant and payload.
type Solution struct {
	kind Kind
	n    uint64 // U32, U64, and I64 (two's complement)
	s    string
}

// U32 returns a Solution holding v.
func U32(v uint32) Solution { return Solution{kind: KindU32, n: uint64(v)} }

// U64 returns a Solution holding v.
func U64(v uint64) Solution { return Solution{kind: KindU64, n: v} }

// I64 returns a Solution holding v.
func I64(v int64) Solution { return Solution{kind: KindI64, n: uint64(v)} }

// Str returns a Solution holding v.
func Str(v string) Solution { return Solution{kind: KindStr, s: v} }

// Kind reports which variant s holds.
func (s Solution) Kind() Kind { return s.kind }

// Uint32 returns the payload of a U32 solution.
func (s Solution) Uint32() (uint32, bool) {
	return uint32(s.n), s.kind == KindU32
}

// Uint64 returns the payload of a U64 solution.
func (s Solution) Uint64() (uint64, bool) {
	return s.n, s.kind == KindU64
}

// Int64 returns the payload of an I64 solution.
func (s Solution) Int64() (int64, bool) {
	return int64(s.n), s.kind == KindI64
}

// String returns the payload formatted as the puzzle expects it to be
// submitted.
func (s Solution) String() string {
	switch s.kind {
	case KindU32, KindU64:
		return strconv.FormatUint(s.n, 10)
	case KindI64:
		return strconv.FormatInt(int64(s.n), 10)
	case KindStr:
		return s.s
	}
	return "<none>"
}

// GoString makes test failures show the variant, e.g. U32(142).
func (s Solution) GoString() string {
	if s.kind == KindStr {
		return fmt.Sprintf("Str(%q)", s.s)
	}
	if s.kind == KindNone {
		return "Solution{}"
	}
	return fmt.Sprintf("%s(%s)", strings.ToUpper(s.kind.String()), s)
}
