// Package harness wires discovery, execution, and classification into
// a single conformance run over a fixture directory.
package harness

import (
	"context"
	"time"

	"github.com/Maazi-78/parsecheck/internal/classify"
	"github.com/Maazi-78/parsecheck/internal/config"
	"github.com/Maazi-78/parsecheck/internal/errors"
	"github.com/Maazi-78/parsecheck/internal/fixture"
	"github.com/Maazi-78/parsecheck/internal/output"
	"github.com/Maazi-78/parsecheck/internal/runner"
)

// Summary aggregates the outcome of one full run. Passed, Failed and
// Skipped always sum to the number of discovered fixtures.
type Summary struct {
	Passed   int
	Failed   int
	Skipped  int
	Failures []string
	Duration time.Duration
}

// Total returns the number of fixtures the run attempted.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Ok reports whether the run counts as a success: every classified
// fixture passed. Skipped fixtures do not fail a run on their own.
func (s Summary) Ok() bool {
	return s.Failed == 0
}

// Harness runs the full fixture suite for one configuration.
type Harness struct {
	cfg        *config.Config
	runner     *runner.Runner
	classifier classify.Classifier
	out        *output.Writer
}

// New builds a Harness from a validated configuration. The writer
// receives per-fixture progress; the final summary is left to the
// caller so it can choose the exit code alongside it.
func New(cfg *config.Config, out *output.Writer) *Harness {
	r := runner.New(cfg.Parser.Path, cfg.Parser.Args)
	r.ScratchDir = cfg.Scratch.Directory
	r.KeepScratch = cfg.Scratch.Keep
	if out.Verbose() {
		r.Stream = out.Stdout()
	}
	return &Harness{
		cfg:        cfg,
		runner:     r,
		classifier: classify.New(cfg.Classify.Marker),
		out:        out,
	}
}

// Discover lists the fixture paths the run would process, in the
// order they would be processed.
func (h *Harness) Discover() ([]string, error) {
	return fixture.Discover(h.cfg.Fixtures.Directory, h.cfg.Fixtures.Extension)
}

// Run executes the whole suite: discovers fixtures, checks the parser
// executable once, then runs and classifies each fixture in discovery
// order. Failures are reported through the writer as they happen.
// Run returns an error only for fatal conditions (unreadable fixture
// directory, missing parser); per-fixture problems land in the
// Summary instead.
func (h *Harness) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	// The reported duration covers the whole run, discovery included.
	start := time.Now()

	fixtures, err := h.Discover()
	if err != nil {
		return sum, err
	}

	if len(fixtures) > 0 {
		if err := h.runner.CheckParser(); err != nil {
			return sum, err
		}
	}

	for _, fx := range fixtures {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(err, "run interrupted")
		}

		h.out.FixtureStart(fx)
		res, err := h.runner.Run(ctx, fx)
		if err != nil {
			// The fixture file itself could not be read.
			sum.Skipped++
			h.out.FixtureSkipped(fx, err.Error())
			continue
		}
		if res.Skipped {
			sum.Skipped++
			h.out.FixtureSkipped(fx, res.SkipReason)
			continue
		}
		if res.LaunchErr != nil {
			h.out.Warning("could not launch parser for %s: %v", fx, res.LaunchErr)
		}

		switch h.classifier.Classify(res.Output) {
		case classify.Fail:
			sum.Failed++
			sum.Failures = append(sum.Failures, fx)
			h.out.FixtureFailed(fx)
		default:
			sum.Passed++
			h.out.FixturePassed(fx, res.Duration.Round(time.Millisecond).String())
		}
	}
	sum.Duration = time.Since(start)

	return sum, nil
}
