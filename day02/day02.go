// Package day02 solves "Day 2: Cube Conundrum".
package day02

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed input.txt
var input string

//go:embed day02.go
var source []byte

// Bag is the number of cubes of each color the elf loaded for part 1.
var Bag = Round{Red: 12, Green: 13, Blue: 14}

// CubeConundrum is the day 2 puzzle.
type CubeConundrum struct{}

var _ aoc.Problem = CubeConundrum{}
var _ aoc.Sampled = CubeConundrum{}

func (CubeConundrum) ProblemInput() string { return input }
func (CubeConundrum) Day() int             { return 2 }
func (CubeConundrum) Name() string         { return "Day 2: Cube Conundrum" }
func (CubeConundrum) Source() []byte       { return source }

// Round is a handful of cubes revealed at once.
type Round struct {
	Red, Green, Blue uint32
}

// Max returns the element-wise maximum of r and o.
func (r Round) Max(o Round) Round {
	return Round{
		Red:   max(r.Red, o.Red),
		Green: max(r.Green, o.Green),
		Blue:  max(r.Blue, o.Blue),
	}
}

// Within reports whether r could have been drawn from bag.
func (r Round) Within(bag Round) bool {
	return r.Red <= bag.Red && r.Green <= bag.Green && r.Blue <= bag.Blue
}

// Game is one line of the record: its ID and the fewest cubes of each
// color that make every round possible.
type Game struct {
	ID  uint32
	Max Round
}

// Power is the product of the per-color maxima.
func (g Game) Power() uint32 {
	return g.Max.Red * g.Max.Green * g.Max.Blue
}

var (
	ErrNoGamePrefix = errors.New(`missing "Game " prefix`)
	ErrNoSeparator  = errors.New(`missing ": " separator`)
	ErrBadCount     = errors.New("malformed cube count")
	ErrBadColor     = errors.New("unexpected color")
)

// ParseRound parses a clause like "3 blue, 4 red". Colors that are not
// mentioned are 0; a color mentioned twice keeps its last count.
func ParseRound(clause string) (Round, error) {
	var r Round
	for _, part := range strings.Split(clause, ", ") {
		count, color, ok := strings.Cut(part, " ")
		if !ok {
			return Round{}, fmt.Errorf("%w: %q", ErrBadCount, part)
		}
		n, err := aoc.ParseUint32(count)
		if err != nil {
			return Round{}, fmt.Errorf("%w: %q: %v", ErrBadCount, part, err)
		}
		switch color {
		case "red":
			r.Red = n
		case "green":
			r.Green = n
		case "blue":
			r.Blue = n
		default:
			return Round{}, fmt.Errorf("%w: %q", ErrBadColor, color)
		}
	}
	return r, nil
}

// ParseGame parses a line like
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func ParseGame(line string) (Game, error) {
	id, rounds, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrNoSeparator, line)
	}
	id, ok = strings.CutPrefix(id, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrNoGamePrefix, line)
	}
	var (
		g   Game
		err error
	)
	if g.ID, err = aoc.ParseUint32(id); err != nil {
		return Game{}, fmt.Errorf("malformed game id %q: %w", id, err)
	}
	for _, clause := range strings.Split(rounds, "; ") {
		r, err := ParseRound(clause)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", g.ID, err)
		}
		g.Max = g.Max.Max(r)
	}
	return g, nil
}

func mustParseGames(input string) []Game {
	var games []Game
	for _, line := range aoc.Lines(input) {
		games = append(games, aoc.MustGet(ParseGame(line)))
	}
	return games
}

// SolvePart1With sums the IDs of the games possible with Bag.
/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (CubeConundrum) SolvePart1With(input string) aoc.Solution {
	return aoc.U32(aoc.SumFunc(mustParseGames(input), func(g Game) uint32 {
		if g.Max.Within(Bag) {
			return g.ID
		}
		return 0
	}))
}

// SolvePart2With sums the power of every game.
//
// want=2286
func (CubeConundrum) SolvePart2With(input string) aoc.Solution {
	return aoc.U32(aoc.SumFunc(mustParseGames(input), Game.Power))
}
