package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/sadopc/floatbar/internal/core/definition"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatbar validate <file.floatbar.yaml> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Validate toolbar definition files. Tool scripts are compiled but not run.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  floatbar validate draw.floatbar.yaml\n")
		fmt.Fprintf(os.Stderr, "  floatbar validate *.floatbar.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasErrors := false
	for _, path := range fs.Args() {
		if err := validateFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			hasErrors = true
		} else {
			fmt.Printf("OK   %s\n", path)
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return errors.New("file is empty")
	}

	def, err := definition.Parse(data)
	if err != nil {
		return err
	}

	var problems []string
	if def.Name == "" {
		problems = append(problems, "missing toolbar name")
	}
	if len(def.AllTools()) == 0 && len(def.BuiltInTools) == 0 {
		problems = append(problems, "toolbar defines no tools")
	}
	if err := def.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	problems = append(problems, checkScripts(def)...)

	if len(problems) > 0 {
		return fmt.Errorf("validation warnings:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// checkScripts compiles every tool script without running it.
func checkScripts(def *definition.Definition) []string {
	var out []string
	for _, tl := range def.AllTools() {
		if tl.Script == "" {
			continue
		}
		if _, err := goja.Compile(tl.ID, tl.Script, false); err != nil {
			out = append(out, fmt.Sprintf("tool %q script: %v", tl.ID, err))
		}
	}
	return out
}
