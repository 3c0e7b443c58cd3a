package cli

import (
	"fmt"
	"strings"

	"github.com/Maazi-78/parsecheck/internal/output"
)

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	w := output.New()
	shell := ""
	alias := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			w.ErrorPrefix("completion: --alias requires a value (--alias=<name>)")
			return 2
		case strings.HasPrefix(arg, "-"):
			w.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage()
			return 2
		default:
			if shell != "" {
				w.ErrorPrefix("completion: unexpected argument: %s", arg)
				return 2
			}
			shell = arg
		}
	}

	if shell == "" {
		w.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage()
		return 2
	}

	cmdName := "parsecheck"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion(cmdName))
	case "zsh":
		fmt.Print(generateZshCompletion(cmdName))
	case "fish":
		fmt.Print(generateFishCompletion(cmdName))
	default:
		w.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return 2
	}

	return 0
}

// printCompletionUsage prints the help text for the completion command.
func printCompletionUsage() {
	w := output.New()

	w.HelpTitle("parsecheck completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("parsecheck completion <shell> [--alias=<name>]")

	w.HelpSection("Arguments:")
	w.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", helpFlagWidthShort)

	w.HelpSection("Options:")
	w.HelpFlag("--alias=<name>", "Generate completion for command alias", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)

	w.HelpSection("Examples:")
	w.HelpExample("parsecheck completion bash", "Generate bash completion")
	w.HelpExample("parsecheck completion zsh", "Generate zsh completion")
	w.HelpExample("parsecheck completion fish", "Generate fish completion")
	w.HelpExample("parsecheck completion bash --alias=pc", "Generate bash completion for alias 'pc'")
	w.Println("")
}

// builtinCommands returns the commands offered for completion.
func builtinCommands() []string {
	return []string{
		"run",
		"fixtures",
		"config",
		"completion",
		"version",
		"help",
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	return []string{
		"--quiet",
		"--verbose",
		"--config",
		"--help",
		"--version",
	}
}

func generateBashCompletion(cmdName string) string {
	commands := builtinCommands()
	flags := globalFlags()

	// Generate function name from command (replace - with _)
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	var aliasNote string
	if cmdName == "parsecheck" {
		aliasNote = `
# Alias support:
# If you use an alias (e.g., alias pc="parsecheck"), add completion for it:
#   complete -F _parsecheck_completions pc
# Or generate completion directly for your alias:
#   eval "$(parsecheck completion bash --alias=pc)"
`
	} else {
		aliasNote = fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="parsecheck"
`, cmdName, cmdName)
	}

	return fmt.Sprintf(`# parsecheck bash completion
# Add to ~/.bashrc: eval "$(parsecheck completion bash)"
%s
%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"
    local config_subcommands="validate show"
    local completion_shells="bash zsh fish"

    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
            return
            ;;
        config)
            COMPREPLY=($(compgen -W "${config_subcommands}" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "${completion_shells}" -- "${cur}"))
            return
            ;;
        --config)
            _filedir
            return
            ;;
    esac

    # Complete flags if current word starts with -
    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
}

complete -F %s %s
`, aliasNote, funcName, strings.Join(commands, " "), strings.Join(flags, " "), cmdName, funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	// Generate function name from command (replace - with _)
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var aliasNote string
	if cmdName == "parsecheck" {
		aliasNote = `
# Alias support:
# If you use an alias (e.g., alias pc="parsecheck"), add completion for it:
#   compdef _parsecheck pc
# Or generate completion directly for your alias:
#   eval "$(parsecheck completion zsh --alias=pc)"
`
	} else {
		aliasNote = fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="parsecheck"
`, cmdName, cmdName)
	}

	return fmt.Sprintf(`#compdef %s
# parsecheck zsh completion
# Add to ~/.zshrc: eval "$(parsecheck completion zsh)"
%s
%s() {
    local -a commands flags

    commands=(
        'run:Run every fixture through the parser'
        'fixtures:List discovered fixtures without running them'
        'config:Configuration utilities (validate, show)'
        'completion:Generate shell completion scripts'
        'version:Show version information'
        'help:Show help'
    )

    flags=(
        '--quiet[Minimal output]'
        '--verbose[Per-fixture detail and live parser output]'
        '--config[Use an explicit configuration file]:file:_files'
        '--help[Show help]'
        '--version[Show version]'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        _arguments $flags
        return
    fi

    case "${words[2]}" in
        config)
            local -a subcommands
            subcommands=(
                'validate:Validate the configuration file'
                'show:Print the effective configuration'
            )
            _describe 'subcommand' subcommands
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        *)
            _arguments $flags
            ;;
    esac
}

compdef %s %s
`, cmdName, aliasNote, funcName, funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var aliasNote string
	if cmdName == "parsecheck" {
		aliasNote = `
# Alias support:
# Generate completion directly for your alias:
#   parsecheck completion fish --alias=pc | source
`
	} else {
		aliasNote = fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="parsecheck"
`, cmdName, cmdName)
	}

	return fmt.Sprintf(`# parsecheck fish completion
# Add to ~/.config/fish/config.fish: parsecheck completion fish | source
%s
complete -c %s -f

# Commands
complete -c %s -n '__fish_use_subcommand' -a run -d 'Run every fixture through the parser'
complete -c %s -n '__fish_use_subcommand' -a fixtures -d 'List discovered fixtures'
complete -c %s -n '__fish_use_subcommand' -a config -d 'Configuration utilities'
complete -c %s -n '__fish_use_subcommand' -a completion -d 'Generate shell completion'
complete -c %s -n '__fish_use_subcommand' -a version -d 'Show version information'
complete -c %s -n '__fish_use_subcommand' -a help -d 'Show help'

# Subcommands
complete -c %s -n '__fish_seen_subcommand_from config' -a 'validate show'
complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'

# Global flags
complete -c %s -l quiet -s q -d 'Minimal output'
complete -c %s -l verbose -s v -d 'Per-fixture detail and live parser output'
complete -c %s -l config -r -d 'Use an explicit configuration file'
complete -c %s -l help -s h -d 'Show help'
complete -c %s -l version -d 'Show version'
`, aliasNote, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName, cmdName)
}
