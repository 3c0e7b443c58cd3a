package harness

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Maazi-78/parsecheck/internal/config"
	"github.com/Maazi-78/parsecheck/internal/errors"
	"github.com/Maazi-78/parsecheck/internal/output"
)

// markerParser is a stub parser that rejects any input containing the
// word "bad" by printing the failure marker.
const markerParser = `#!/bin/sh
input=$(cat)
case "$input" in
*bad*) echo "Error: syntax error" ;;
*) echo "ok" ;;
esac
`

func writeParser(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub parsers are shell scripts")
	}
	path := filepath.Join(t.TempDir(), "parser.sh")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write parser: %v", err)
	}
	return path
}

func writeFixtures(t *testing.T, contents map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range contents {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

func testConfig(fixturesDir, parserPath string) *config.Config {
	cfg := config.Default()
	cfg.Fixtures.Directory = fixturesDir
	cfg.Parser.Path = parserPath
	return cfg
}

func newTestHarness(cfg *config.Config) (*Harness, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	out := output.NewWithWriters(&stdout, &stderr, false)
	return New(cfg, out), &stdout, &stderr
}

func TestRun_AllPass(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{
		"a.dcf": "int x;",
		"b.dcf": "int y;",
		"c.dcf": "int z;",
	})

	h, _, _ := newTestHarness(testConfig(dir, parser))
	sum, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Passed != 3 || sum.Failed != 0 || sum.Skipped != 0 {
		t.Errorf("summary = %+v, want 3 passed", sum)
	}
	if !sum.Ok() {
		t.Error("Ok() = false for all-pass run")
	}
	if sum.Total() != 3 {
		t.Errorf("Total() = %d, want 3", sum.Total())
	}
}

func TestRun_MixedOutcome(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{
		"good.dcf":  "int x;",
		"bad1.dcf":  "this is bad",
		"bad2.dcf":  "also bad",
		"other.txt": "bad but wrong extension",
	})

	h, stdout, _ := newTestHarness(testConfig(dir, parser))
	sum, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Passed != 1 || sum.Failed != 2 || sum.Skipped != 0 {
		t.Errorf("summary = %+v, want 1 passed 2 failed", sum)
	}
	if sum.Ok() {
		t.Error("Ok() = true with failures")
	}
	if len(sum.Failures) != 2 {
		t.Fatalf("Failures = %v, want 2 entries", sum.Failures)
	}
	for _, f := range sum.Failures {
		if !strings.Contains(stdout.String(), "Failed: "+f) {
			t.Errorf("failure notice for %s missing in output:\n%s", f, stdout.String())
		}
	}
}

func TestRun_EmptyFixtureDirectory(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	h, _, _ := newTestHarness(testConfig(t.TempDir(), parser))
	sum, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Total() != 0 {
		t.Errorf("Total() = %d, want 0", sum.Total())
	}
	if !sum.Ok() {
		t.Error("empty run must count as success")
	}
	// The clock spans discovery too, so even a fixture-free run
	// reports a positive duration.
	if sum.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", sum.Duration)
	}
}

func TestRun_MissingFixtureDirectory(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	cfg := testConfig(filepath.Join(t.TempDir(), "absent"), parser)
	h, _, _ := newTestHarness(cfg)
	_, err := h.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing fixture directory")
	}
	if !errors.IsDiscovery(err) {
		t.Errorf("error kind = %v, want discovery", err)
	}
	if errors.GetExitCode(err) != errors.ExitEnvironmentError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitEnvironmentError)
	}
}

func TestRun_MissingParserIsFatal(t *testing.T) {
	t.Parallel()

	dir := writeFixtures(t, map[string]string{"a.dcf": "x"})
	cfg := testConfig(dir, filepath.Join(t.TempDir(), "no-parser"))
	h, _, _ := newTestHarness(cfg)
	_, err := h.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing parser")
	}
	if errors.GetExitCode(err) != errors.ExitEnvironmentError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitEnvironmentError)
	}
}

func TestRun_MissingParserIgnoredWithoutFixtures(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("stub parsers are shell scripts")
	}
	cfg := testConfig(t.TempDir(), filepath.Join(t.TempDir(), "no-parser"))
	h, _, _ := newTestHarness(cfg)
	if _, err := h.Run(context.Background()); err != nil {
		t.Errorf("Run() with zero fixtures should not probe the parser, got %v", err)
	}
}

func TestRun_UnreadableFixtureSkipped(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind for root")
	}
	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{
		"open.dcf":   "int x;",
		"locked.dcf": "int y;",
	})
	if err := os.Chmod(filepath.Join(dir, "locked.dcf"), 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	h, _, stderr := newTestHarness(testConfig(dir, parser))
	sum, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Skipped != 1 || sum.Passed != 1 {
		t.Errorf("summary = %+v, want 1 passed 1 skipped", sum)
	}
	if sum.Total() != 2 {
		t.Errorf("Total() = %d, want 2", sum.Total())
	}
	if !strings.Contains(stderr.String(), "skipped") {
		t.Errorf("skip notice missing in stderr:\n%s", stderr.String())
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{
		"a.dcf": "good",
		"b.dcf": "bad",
	})

	cfg := testConfig(dir, parser)
	h1, _, _ := newTestHarness(cfg)
	first, err := h1.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	h2, _, _ := newTestHarness(cfg)
	second, err := h2.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if first.Passed != second.Passed || first.Failed != second.Failed || first.Skipped != second.Skipped {
		t.Errorf("runs disagree: first %+v, second %+v", first, second)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{"a.dcf": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, _, _ := newTestHarness(testConfig(dir, parser))
	if _, err := h.Run(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestDiscover_ListsFixtures(t *testing.T) {
	t.Parallel()

	parser := writeParser(t, markerParser)
	dir := writeFixtures(t, map[string]string{
		"a.dcf":    "x",
		"b.dcf":    "y",
		"skip.txt": "z",
	})
	h, _, _ := newTestHarness(testConfig(dir, parser))
	fixtures, err := h.Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(fixtures) != 2 {
		t.Errorf("Discover() = %v, want 2 fixtures", fixtures)
	}
}
