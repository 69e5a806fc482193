package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Options selects what a Runner runs.
type Options struct {
	Day        int    // 0 runs every registered day
	Part       string // "1", "2" or "" for both
	OnlySample bool
	SkipSample bool
	// Verify solves the real input twice and fails if the two answers
	// hash differently.
	Verify bool
}

// Runner runs problems, checking their samples before solving the real
// input.
type Runner struct {
	Year    int
	Out     io.Writer // defaults to os.Stdout
	Log     *zap.Logger
	Fetcher *Fetcher // used when a problem has no bundled input
	Options
}

var parts = []string{"1", "2"}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Run runs the selected days of problems in day order. It returns an error
// naming every day that failed; the remaining days still run.
func (r *Runner) Run(ctx context.Context, problems []Problem) error {
	days := make(map[int]Problem, len(problems))
	for _, p := range problems {
		if prev, ok := days[p.Day()]; ok {
			return fmt.Errorf("day %d registered twice: %q and %q", p.Day(), prev.Name(), p.Name())
		}
		days[p.Day()] = p
	}
	if r.Day != 0 {
		p, ok := days[r.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.Day)
		}
		return r.runDay(ctx, p)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for i, d := range dayNums {
		if i > 0 {
			fmt.Fprintln(r.out())
		}
		if err := r.runDay(ctx, days[d]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) input(ctx context.Context, p Problem) (string, error) {
	if in := p.ProblemInput(); in != "" {
		return in, nil
	}
	if r.Fetcher == nil {
		return "", fmt.Errorf("day %d has no bundled input", p.Day())
	}
	b, err := r.Fetcher.Input(ctx, r.Year, p.Day())
	if err != nil {
		return "", fmt.Errorf("day %d input: %w", p.Day(), err)
	}
	return string(b), nil
}

func solver(p Problem, part string) func(string) Solution {
	if part == "1" {
		return p.SolvePart1With
	}
	return p.SolvePart2With
}

func (r *Runner) runDay(ctx context.Context, p Problem) error {
	log := r.logger().With(zap.Int("day", p.Day()))
	fmt.Fprintf(r.out(), "Running day %d: %s\n", p.Day(), p.Name())

	var samples map[string]Sample
	if sp, ok := p.(Sampled); ok && !r.SkipSample {
		var err error
		samples, err = ExtractSamples(sp.Source())
		if err != nil {
			return fmt.Errorf("day %d: extracting samples: %w", p.Day(), err)
		}
		log.Debug("extracted samples", zap.Int("count", len(samples)))
	}

	var input string
	if !r.OnlySample {
		var err error
		if input, err = r.input(ctx, p); err != nil {
			return err
		}
	}

	for _, part := range parts {
		if r.Part != "" && part != r.Part {
			continue
		}
		solve := solver(p, part)

		if !r.SkipSample {
			sample, ok := samples["SolvePart"+part+"With"]
			if !ok {
				log.Debug("no sample", zap.String("part", part))
			} else {
				t0 := time.Now()
				got := solve(sample.Input)
				if got.String() != sample.Want {
					fmt.Fprintf(r.out(), "part %s: %v ❌; want %v\n", part, got, sample.Want)
					return fmt.Errorf("day %d part %s sample: got %v, want %v", p.Day(), part, got, sample.Want)
				}
				fmt.Fprintf(r.out(), "part %s sample: %v ✅ (%v) \n", part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
		if r.OnlySample {
			continue
		}

		t0 := time.Now()
		got := solve(input)
		d := time.Since(t0)
		fmt.Fprintf(r.out(), "part %s: %v (took %v) \n", part, got, d.Round(time.Microsecond))
		log.Debug("solved", zap.String("part", part), zap.Stringer("answer", got), zap.Duration("took", d))

		if r.Verify {
			again := solve(input)
			h1, h2 := deephash.Hash(&got), deephash.Hash(&again)
			if h1 != h2 {
				return fmt.Errorf("day %d part %s is not deterministic: %v then %v", p.Day(), part, got, again)
			}
			log.Debug("verified", zap.String("part", part), zap.Stringer("hash", h1))
		}
	}
	return nil
}
