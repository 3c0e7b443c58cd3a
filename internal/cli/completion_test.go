package cli

import (
	"strings"
	"testing"
)

func TestGenerateBashCompletion(t *testing.T) {
	t.Parallel()

	script := generateBashCompletion("parsecheck")
	for _, want := range []string{
		"_parsecheck_completions",
		"complete -F _parsecheck_completions parsecheck",
		"run",
		"fixtures",
		"validate show",
		"bash zsh fish",
		"--config",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("bash completion missing %q", want)
		}
	}
}

func TestGenerateBashCompletion_Alias(t *testing.T) {
	t.Parallel()

	script := generateBashCompletion("pc")
	if !strings.Contains(script, "complete -F _pc_completions pc") {
		t.Error("alias completion missing complete registration")
	}
	if !strings.Contains(script, `alias pc="parsecheck"`) {
		t.Error("alias completion missing alias note")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	t.Parallel()

	script := generateZshCompletion("parsecheck")
	for _, want := range []string{
		"#compdef parsecheck",
		"_parsecheck()",
		"compdef _parsecheck parsecheck",
		"run:Run every fixture",
		"'validate:Validate the configuration file'",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("zsh completion missing %q", want)
		}
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	t.Parallel()

	script := generateFishCompletion("parsecheck")
	for _, want := range []string{
		"complete -c parsecheck -f",
		"-a run",
		"-a fixtures",
		"__fish_seen_subcommand_from config' -a 'validate show'",
		"-l config -r",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("fish completion missing %q", want)
		}
	}
}

func TestGenerateCompletion_HyphenatedAlias(t *testing.T) {
	t.Parallel()

	script := generateBashCompletion("my-pc")
	if !strings.Contains(script, "_my_pc_completions") {
		t.Error("hyphens in alias must be converted to underscores in function name")
	}
}

func TestCmdCompletion_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no shell", nil, 2},
		{"unsupported shell", []string{"powershell"}, 2},
		{"alias without value", []string{"bash", "--alias"}, 2},
		{"unknown flag", []string{"bash", "--bogus"}, 2},
		{"extra argument", []string{"bash", "zsh"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cmdCompletion(tt.args); got != tt.want {
				t.Errorf("cmdCompletion(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestCmdCompletion_ValidShells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		if got := cmdCompletion([]string{shell}); got != 0 {
			t.Errorf("cmdCompletion(%s) = %d, want 0", shell, got)
		}
	}
}
