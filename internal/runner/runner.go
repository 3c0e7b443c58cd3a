// Package runner executes the parser under test against a single
// fixture and captures its combined output through a scratch file.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Maazi-78/parsecheck/internal/errors"
)

// Result holds everything observed while running one fixture.
type Result struct {
	// Output is the combined stdout+stderr of the parser, read back
	// from the scratch file after the process exited.
	Output string

	// LaunchErr is set when the parser process could not be started.
	// A non-zero exit status is not a launch error.
	LaunchErr error

	// Skipped is set when the fixture could not be run or its output
	// could not be captured. SkipReason explains why.
	Skipped    bool
	SkipReason string

	// ScratchPath is the path of the scratch artifact. It is only
	// valid after Run returns when the runner keeps scratch files.
	ScratchPath string

	// Duration is the wall-clock time of the parser process.
	Duration time.Duration
}

// Runner launches the parser executable once per fixture.
type Runner struct {
	// ParserPath is the executable to launch for each fixture.
	ParserPath string

	// Args are extra arguments passed to the parser on every run.
	Args []string

	// ScratchDir is the directory for scratch artifacts. Empty means
	// the system temporary directory.
	ScratchDir string

	// KeepScratch retains scratch files after each run instead of
	// removing them.
	KeepScratch bool

	// Stream, when non-nil, receives a live copy of the parser output
	// in addition to the scratch file.
	Stream io.Writer
}

// New creates a Runner for the given parser executable.
func New(parserPath string, args []string) *Runner {
	return &Runner{
		ParserPath: parserPath,
		Args:       args,
	}
}

// CheckParser verifies that the parser executable exists before any
// fixture is run. A missing parser would otherwise fail every fixture
// with the same confusing launch error.
func (r *Runner) CheckParser() error {
	info, err := os.Stat(r.ParserPath)
	if err != nil {
		if os.IsNotExist(err) {
			// A bare name may still resolve through PATH.
			if _, lookErr := exec.LookPath(r.ParserPath); lookErr == nil {
				return nil
			}
			return errors.Environmentf("parser executable not found: %s", r.ParserPath)
		}
		return errors.Environmentf("cannot stat parser executable %s: %v", r.ParserPath, err)
	}
	if info.IsDir() {
		return errors.Environmentf("parser path is a directory: %s", r.ParserPath)
	}
	return nil
}

// Run executes the parser once with the fixture file as stdin and
// captures combined stdout+stderr into a fresh scratch file. The
// scratch file is removed before Run returns unless KeepScratch is
// set. Launch failures and capture failures are reported in the
// Result rather than as an error; Run itself only fails when the
// fixture cannot be opened.
func (r *Runner) Run(ctx context.Context, fixturePath string) (Result, error) {
	var res Result

	in, err := os.Open(fixturePath)
	if err != nil {
		return res, errors.FixtureError(fixturePath, fmt.Sprintf("cannot open fixture: %v", err))
	}
	defer in.Close()

	scratch, err := r.createScratch(fixturePath)
	if err != nil {
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("cannot create scratch file: %v", err)
		return res, nil
	}
	res.ScratchPath = scratch.Name()
	if !r.KeepScratch {
		defer os.Remove(scratch.Name())
	}

	var sink io.Writer = scratch
	if r.Stream != nil {
		sink = io.MultiWriter(scratch, r.Stream)
	}

	cmd := exec.CommandContext(ctx, r.ParserPath, r.Args...)
	cmd.Stdin = in
	cmd.Stdout = sink
	cmd.Stderr = sink
	cmd.Env = os.Environ()

	start := time.Now()
	runErr := cmd.Run()
	res.Duration = time.Since(start)

	if runErr != nil {
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			// The process never started. Record it and let the
			// classifier see whatever (empty) output was captured.
			res.LaunchErr = runErr
		}
	}

	if err := scratch.Close(); err != nil {
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("cannot flush scratch file: %v", err)
		return res, nil
	}

	data, err := os.ReadFile(scratch.Name())
	if err != nil {
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("cannot read scratch file: %v", err)
		return res, nil
	}
	res.Output = string(data)

	return res, nil
}

// createScratch creates a fresh scratch file for one fixture run. The
// fixture name is embedded in the pattern so kept artifacts can be
// matched back to their fixture.
func (r *Runner) createScratch(fixturePath string) (*os.File, error) {
	dir := r.ScratchDir
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	pattern := fmt.Sprintf("parsecheck-%s-*.out", filepath.Base(fixturePath))
	return os.CreateTemp(dir, pattern)
}
