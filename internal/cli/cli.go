// Package cli provides command-line interface functionality for parsecheck.
package cli

import (
	"fmt"
	"strings"

	"github.com/Maazi-78/parsecheck/internal/errors"
	"github.com/Maazi-78/parsecheck/internal/output"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are passed through to the parser, so help flags there
// are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		// Bare invocation runs the suite with defaults, matching the
		// usual workflow of calling parsecheck from the project root.
		return cmdRun(nil, &GlobalOptions{})
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("parsecheck %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		return cmdRun(nil, opts)
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)

	// A bare -- means the default run command with parser arguments.
	case "--":
		return cmdRun(remaining, opts)

	case "fixtures":
		return cmdFixtures(cmdArgs, opts)

	case "config":
		return cmdConfig(cmdArgs, opts)

	case "completion":
		return cmdCompletion(cmdArgs)

	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'parsecheck --help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	ConfigPath string
	Quiet      bool
	Verbose    bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Pass-through arguments after -- must be preserved verbatim
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		case arg == "--":
			// Everything after -- is passed through
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	// Apply verbosity settings to the global output writer so every
	// command sees consistent verbosity.
	applyVerbosityToOutput(opts)

	return opts, remaining, nil
}

// validateGlobalOptions checks that global options are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	if strings.HasPrefix(opts.ConfigPath, "-") {
		return fmt.Errorf("--config requires a file path, got %q", opts.ConfigPath)
	}
	return nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("parsecheck - conformance test harness for parser executables")

	w.HelpSection("Usage:")
	w.HelpUsage("parsecheck [run] [flags]      Run the fixture suite")
	w.HelpUsage("parsecheck <command> [flags]  Run a utility command")

	w.HelpSection("Commands:")
	w.HelpCommand("run", "Run every fixture through the parser (default)", 16)
	w.HelpCommand("fixtures", "List discovered fixtures without running them", 16)
	w.HelpCommand("config validate", "Validate the configuration file", 16)
	w.HelpCommand("config show", "Print the effective configuration", 16)
	w.HelpCommand("completion", "Generate shell completion (bash, zsh, fish)", 16)
	w.HelpCommand("version", "Show version information", 16)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample("parsecheck", "Run all fixtures with parsecheck.json defaults")
	w.HelpExample("parsecheck run -v", "Run with per-fixture detail")
	w.HelpExample("parsecheck run --config=ci.json", "Run with an explicit config file")
	w.HelpExample("parsecheck fixtures", "Show which files would be tested")
	w.Println("")
}

func printGlobalFlags(w *output.Writer) {
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidthGlobal)
	w.HelpFlag("-v, --verbose", "Per-fixture detail and live parser output", helpFlagWidthGlobal)
	w.HelpFlag("--config=<path>", "Use an explicit configuration file", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)
	w.HelpFlag("--version", "Show version", helpFlagWidthGlobal)
}
