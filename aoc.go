// Package aoc holds the shared harness for Maisem's Advent of Code 2023
// solutions: the Problem contract every day implements, the Solution
// result type, parsing helpers and a Runner that checks samples before
// solving the real input. (forked from maisem/aoc)
package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
)

// Problem is implemented by each day's solver.
type Problem interface {
	// ProblemInput returns the puzzle input bundled with the day. It may be
	// empty when the input has not been fetched yet.
	ProblemInput() string
	Day() int
	Name() string
	SolvePart1With(input string) Solution
	SolvePart2With(input string) Solution
}

// Sampled is implemented by problems that carry sample inputs in the doc
// comments of their source file. See ExtractSamples.
type Sampled interface {
	Source() []byte
}

// SolvePart1 solves part 1 of p against its bundled input.
func SolvePart1(p Problem) Solution {
	return p.SolvePart1With(p.ProblemInput())
}

// SolvePart2 solves part 2 of p against its bundled input.
func SolvePart2(p Problem) Solution {
	return p.SolvePart2With(p.ProblemInput())
}

// Sample is an example input and the answer it is expected to produce.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}, true
	}
	return Sample{}, false
}

// ExtractSamples parses src as a Go file and returns the samples found in
// the doc comments of its functions and methods, keyed by name.
//
// A sample comment is either a block comment of the form
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//
// or a single line "// want=8", in which case the input of the previous
// sample in the file is reused.
func ExtractSamples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.Input = Or(s.Input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.Input
			break
		}
	}
	return samples, nil
}
