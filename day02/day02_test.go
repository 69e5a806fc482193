package day02

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2023"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseGame(t *testing.T) {
	tests := []struct {
		line      string
		want      Game
		wantPower uint32
	}{
		{
			line:      "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want:      Game{ID: 1, Max: Round{Red: 4, Green: 2, Blue: 6}},
			wantPower: 48,
		},
		{
			line:      "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
			want:      Game{ID: 3, Max: Round{Red: 20, Green: 13, Blue: 6}},
			wantPower: 1560,
		},
		{
			line:      "Game 42: 7 red",
			want:      Game{ID: 42, Max: Round{Red: 7}},
			wantPower: 0,
		},
	}
	for _, tt := range tests {
		got, err := ParseGame(tt.line)
		if err != nil {
			t.Errorf("ParseGame(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
		if p := got.Power(); p != tt.wantPower {
			t.Errorf("Power(%q) = %v, want %v", tt.line, p, tt.wantPower)
		}
	}
}

func TestParseGameErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"Gam 1: 3 blue", ErrNoGamePrefix},
		{"Game 1 3 blue", ErrNoSeparator},
		{"Game 1: 3 purple", ErrBadColor},
		{"Game 1: x blue", ErrBadCount},
		{"Game 1: 3blue", ErrBadCount},
		{"Game 1: 3 blue; ", ErrBadCount},
	}
	for _, tt := range tests {
		_, err := ParseGame(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseGame(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
	if _, err := ParseGame("Game one: 3 blue"); err == nil {
		t.Error("ParseGame with a malformed id succeeded")
	}
}

func TestParseRound(t *testing.T) {
	got, err := ParseRound("1 red, 2 green, 6 blue")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Round{Red: 1, Green: 2, Blue: 6}, got); diff != "" {
		t.Errorf("ParseRound mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundWithin(t *testing.T) {
	if !(Round{Red: 12, Green: 13, Blue: 14}).Within(Bag) {
		t.Error("the bag itself should be within the bag")
	}
	if (Round{Red: 13}).Within(Bag) {
		t.Error("13 red should not be within the bag")
	}
}

func TestPart1Example(t *testing.T) {
	if got, want := (CubeConundrum{}).SolvePart1With(example), aoc.U32(8); got != want {
		t.Errorf("SolvePart1With = %#v, want %#v", got, want)
	}
}

func TestPart2Example(t *testing.T) {
	if got, want := (CubeConundrum{}).SolvePart2With(example), aoc.U32(2286); got != want {
		t.Errorf("SolvePart2With = %#v, want %#v", got, want)
	}
}

func TestMalformedInputAborts(t *testing.T) {
	for _, in := range []string{
		"Game 1: 3 blue, 4 orange\n",
		"Game 1: 3 blue\n\nGame 2: 1 red\n",
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SolvePart1With(%q) did not abort", in)
				}
			}()
			(CubeConundrum{}).SolvePart1With(in)
		}()
	}
}

func TestSamples(t *testing.T) {
	samples, err := aoc.ExtractSamples(CubeConundrum{}.Source())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]aoc.Sample{
		"SolvePart1With": {Want: "8", Input: example},
		"SolvePart2With": {Want: "2286", Input: example},
	}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Errorf("ExtractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestRealInput(t *testing.T) {
	p := CubeConundrum{}
	if p.ProblemInput() == "" {
		t.Skip("no puzzle input bundled in input.txt")
	}
	if got, want := aoc.SolvePart1(p), aoc.U32(2331); got != want {
		t.Errorf("part 1 = %#v, want %#v", got, want)
	}
	if got, want := aoc.SolvePart2(p), aoc.U32(71585); got != want {
		t.Errorf("part 2 = %#v, want %#v", got, want)
	}
}
