package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Maazi-78/parsecheck/internal/config"
	"github.com/Maazi-78/parsecheck/internal/errors"
	"github.com/Maazi-78/parsecheck/internal/harness"
	"github.com/Maazi-78/parsecheck/internal/output"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidthShort  = 12 // Width for short flags like "-h, --help"
	helpFlagWidthGlobal = 16 // Width for global flags like "--config=<path>"
)

// applyVerbosityToOutput configures the output writer based on verbosity settings.
func applyVerbosityToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)
}

// loadConfig resolves and loads the configuration, handling errors
// uniformly. With no explicit path and no config file in the working
// directory, built-in defaults are used. Returns the config and exit
// code 0 on success, or nil and the appropriate exit code on failure.
func loadConfig(opts *GlobalOptions) (*config.Config, int) {
	path := opts.ConfigPath
	if path == "" {
		found, ok := config.Locate(".")
		if !ok {
			return config.Default(), 0
		}
		path = found
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	return cfg, 0
}

// cmdRun executes the fixture suite and prints the final summary.
// Arguments after -- are forwarded to the parser on every invocation,
// appended after any configured parser.args.
func cmdRun(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printRunUsage()
		return 0
	}
	var parserArgs []string
	if len(args) > 0 {
		if args[0] != "--" {
			out.ErrorPrefix("run: unexpected argument %q", args[0])
			return errors.ExitConfigError
		}
		parserArgs = args[1:]
	}

	cfg, exitCode := loadConfig(opts)
	if cfg == nil {
		return exitCode
	}
	cfg.Parser.Args = append(cfg.Parser.Args, parserArgs...)

	h := harness.New(cfg, out)
	sum, err := h.Run(context.Background())
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if sum.Skipped > 0 {
		out.Warning("Skipped %d test cases", sum.Skipped)
	}

	secs := sum.Duration.Seconds()
	if sum.Ok() {
		out.FinalSuccess("Passed %d test cases in %.2fs", sum.Passed, secs)
		return errors.ExitSuccess
	}
	out.FinalFailure("Failed %d/%d test cases in %.2fs", sum.Failed, sum.Passed+sum.Failed, secs)
	return errors.ExitRuntimeError
}

// cmdFixtures lists the fixture files a run would process, in run order.
func cmdFixtures(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printFixturesUsage()
		return 0
	}

	cfg, exitCode := loadConfig(opts)
	if cfg == nil {
		return exitCode
	}

	h := harness.New(cfg, out)
	fixtures, err := h.Discover()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if len(fixtures) == 0 {
		out.Info("no fixtures matching %q found in %s", cfg.Fixtures.Extension, cfg.Fixtures.Directory)
		return errors.ExitSuccess
	}
	out.List(fixtures)
	out.Detail("%d fixtures", len(fixtures))
	return errors.ExitSuccess
}

// cmdConfig handles configuration utilities.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) == 0 {
		out.ErrorPrefix("config: subcommand required (validate, show)")
		return errors.ExitConfigError
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(opts)
	case "show":
		return cmdConfigShow(opts)
	case "-h", "--help":
		printConfigUsage()
		return 0
	default:
		out.ErrorPrefix("config: unknown subcommand %q", args[0])
		return errors.ExitConfigError
	}
}

func cmdConfigValidate(opts *GlobalOptions) int {
	path := opts.ConfigPath
	if path == "" {
		found, ok := config.Locate(".")
		if !ok {
			out.ErrorPrefix("no %s or %s found", config.ConfigFileJSON, config.ConfigFileYAML)
			return errors.ExitConfigError
		}
		path = found
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, w := range warnings {
		out.Warning("%s", w)
	}

	out.ValidationSuccess("Configuration is valid.")
	out.SummaryItem("File", path)
	out.SummaryItem("Fixtures", fmt.Sprintf("%s (*%s)", cfg.Fixtures.Directory, cfg.Fixtures.Extension))
	out.SummaryItem("Parser", cfg.Parser.Path)
	out.SummaryItem("Marker", fmt.Sprintf("%q", cfg.Classify.Marker))
	if len(warnings) > 0 {
		out.SummaryItem("Warnings", fmt.Sprintf("%d", len(warnings)))
	}
	return errors.ExitSuccess
}

// cmdConfigShow prints the effective configuration after defaults, as JSON.
func cmdConfigShow(opts *GlobalOptions) int {
	cfg, exitCode := loadConfig(opts)
	if cfg == nil {
		return exitCode
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		out.ErrorPrefix("cannot encode configuration: %v", err)
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// printRunUsage prints the help text for the run command.
func printRunUsage() {
	w := output.New()

	w.HelpTitle("parsecheck run - run the fixture suite")

	w.HelpSection("Usage:")
	w.HelpUsage("parsecheck run [flags] [-- <parser args>]")

	w.HelpSection("Description:")
	w.Println("  Pipes each fixture file to the parser executable, captures its")
	w.Println("  combined output, and fails the fixture when the failure marker")
	w.Println("  appears in the output.")

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, mode := range []struct{ flag, desc string }{
		{"", "all fixtures with default settings"},
		{"-v", "each fixture with live parser output"},
		{"-q", "only failures and the final summary"},
	} {
		cmdline := "parsecheck run"
		if mode.flag != "" {
			cmdline += " " + mode.flag
		}
		w.HelpExample(cmdline, fmt.Sprintf("%s %s", titleCase.String("run"), mode.desc))
	}
	w.Println("")
}

// printFixturesUsage prints the help text for the fixtures command.
func printFixturesUsage() {
	w := output.New()

	w.HelpTitle("parsecheck fixtures - list discovered fixtures")

	w.HelpSection("Usage:")
	w.HelpUsage("parsecheck fixtures [flags]")

	w.HelpSection("Description:")
	w.Println("  Lists the fixture files a run would process, in the order the")
	w.Println("  run would process them. Nothing is executed.")

	printGlobalFlags(w)
	w.Println("")
}

// printConfigUsage prints the help text for the config command.
func printConfigUsage() {
	w := output.New()

	w.HelpTitle("parsecheck config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("parsecheck config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate the configuration file", helpFlagWidthShort)
	w.HelpCommand("show", "Print the effective configuration as JSON", helpFlagWidthShort)

	w.HelpSection("Examples:")
	w.HelpExample("parsecheck config validate", "Check parsecheck.json")
	w.HelpExample("parsecheck config show", "Inspect defaults and overrides")
	w.Println("")
}
