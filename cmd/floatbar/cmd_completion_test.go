package main

import (
	"strings"
	"testing"
)

var subcommands = []string{"init", "validate", "dump", "settings", "completion", "version", "help"}

func TestGenerateBashCompletion(t *testing.T) {
	output := generateBashCompletion()

	if !strings.Contains(output, "_floatbar") {
		t.Error("bash completion should contain _floatbar function name")
	}
	if !strings.Contains(output, "commands=") {
		t.Error("bash completion should define commands list")
	}
	for _, cmd := range subcommands {
		if !strings.Contains(output, cmd) {
			t.Errorf("bash completion should contain subcommand %q", cmd)
		}
	}
	for _, flag := range []string{"--width", "--height", "--set", "--dark", "--color", "--clear", "--definition"} {
		if !strings.Contains(output, flag) {
			t.Errorf("bash completion should contain flag %q", flag)
		}
	}
	if !strings.Contains(output, "'!*.floatbar.yaml'") {
		t.Error("bash completion should complete .floatbar.yaml files")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	output := generateZshCompletion()

	if !strings.Contains(output, "_arguments") {
		t.Error("zsh completion should use _arguments for flag completion")
	}
	if !strings.Contains(output, "_describe") {
		t.Error("zsh completion should use _describe for command completion")
	}
	if !strings.Contains(output, `_files -g "*.floatbar.yaml"`) {
		t.Error("zsh completion should complete .floatbar.yaml files")
	}
	for _, cmd := range subcommands {
		if !strings.Contains(output, "'"+cmd+":") {
			t.Errorf("zsh completion should contain subcommand description for %q", cmd)
		}
	}
	if !strings.Contains(output, "(debug info warn error)") {
		t.Error("zsh completion should provide log level values")
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	output := generateFishCompletion()

	descriptions := map[string]string{
		"init":       "Create a new",
		"validate":   "Validate toolbar",
		"dump":       "Print the toolbar frame",
		"settings":   "persisted toolbar settings",
		"completion": "Generate shell completion",
		"version":    "Print version",
		"help":       "Show help",
	}
	for cmd, desc := range descriptions {
		if !strings.Contains(output, "-a "+cmd) {
			t.Errorf("fish completion should register subcommand %q", cmd)
		}
		if !strings.Contains(output, desc) {
			t.Errorf("fish completion should have description containing %q for subcommand %q", desc, cmd)
		}
	}
	for _, flag := range []string{"width", "height", "set", "dark", "color", "clear", "name", "output"} {
		if !strings.Contains(output, "-l "+flag) {
			t.Errorf("fish completion should contain long flag %q", flag)
		}
	}
}

func TestCompletionShellFormat(t *testing.T) {
	bash := strings.TrimSpace(generateBashCompletion())
	if !strings.HasPrefix(bash, "#") || !strings.HasSuffix(bash, "complete -F _floatbar floatbar") {
		t.Error("bash completion should start with a comment and end with complete registration")
	}

	zsh := strings.TrimSpace(generateZshCompletion())
	if !strings.HasPrefix(zsh, "#compdef floatbar") {
		t.Error("zsh completion must start with #compdef floatbar")
	}
	if !strings.HasSuffix(zsh, `_floatbar "$@"`) {
		t.Error("zsh completion should end with _floatbar \"$@\" call")
	}

	for _, line := range strings.Split(generateFishCompletion(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "complete ") {
			t.Errorf("fish completion non-comment line should start with 'complete': %q", line)
		}
	}
}

func TestCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		if s, err := completionScript(shell); err != nil || s == "" {
			t.Errorf("completionScript(%q) = %d bytes, %v", shell, len(s), err)
		}
	}
	if _, err := completionScript("powershell"); err == nil {
		t.Error("completionScript(powershell) should fail")
	}
}
