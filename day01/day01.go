// Package day01 solves "Day 1: Trebuchet?!".
package day01

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed input.txt
var input string

//go:embed day01.go
var source []byte

// Trebuchet is the day 1 puzzle.
type Trebuchet struct{}

var _ aoc.Problem = Trebuchet{}
var _ aoc.Sampled = Trebuchet{}

func (Trebuchet) ProblemInput() string { return input }
func (Trebuchet) Day() int             { return 1 }
func (Trebuchet) Name() string         { return "Day 1: Trebuchet?!" }
func (Trebuchet) Source() []byte       { return source }

// Calibration returns the calibration value of line: its first and last
// digits read as a two digit number. A line without digits yields 0.
func Calibration(line string) uint32 {
	first := strings.IndexFunc(line, aoc.IsDigit[rune])
	if first < 0 {
		return 0
	}
	last := strings.LastIndexFunc(line, aoc.IsDigit[rune])
	return uint32(aoc.Digit(line[first])*10 + aoc.Digit(line[last]))
}

// spelled maps each digit word to a token that keeps its first and last
// letter, so that words sharing a letter ("twone", "eightwo") both survive
// replacement.
var spelled = []struct{ word, token string }{
	{"one", "o1e"},
	{"two", "t2o"},
	{"three", "t3e"},
	{"four", "f4r"},
	{"five", "f5e"},
	{"six", "s6x"},
	{"seven", "s7n"},
	{"eight", "e8t"},
	{"nine", "n9e"},
	{"zero", "z0e"},
}

// Unspell replaces every spelled out digit in line with its digit, keeping
// the letters neighbouring words may share.
func Unspell(line string) string {
	for _, s := range spelled {
		line = strings.ReplaceAll(line, s.word, s.token)
	}
	return line
}

// SolvePart1With sums the calibration values of every line.
/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (Trebuchet) SolvePart1With(input string) aoc.Solution {
	return aoc.U32(aoc.SumFunc(aoc.Lines(input), Calibration))
}

// SolvePart2With is SolvePart1With, with spelled out digits counting as
// digits.
/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (Trebuchet) SolvePart2With(input string) aoc.Solution {
	return aoc.U32(aoc.SumFunc(aoc.Lines(input), func(line string) uint32 {
		return Calibration(Unspell(line))
	}))
}
