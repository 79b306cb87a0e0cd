package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/floatbar/internal/core/definition"
)

func initCmd() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	nameFlag := fs.String("name", "", "Toolbar name (default: prompt interactively)")
	outputFlag := fs.String("output", "", "Output file path (default: <name>"+definition.Ext+")")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatbar init [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Create a new .floatbar.yaml definition with two starter tool sets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  floatbar init\n")
		fmt.Fprintf(os.Stderr, "  floatbar init --name \"Drawing\"\n")
		fmt.Fprintf(os.Stderr, "  floatbar init --output draw.floatbar.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	name := *nameFlag
	if name == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Toolbar name: ")
		input, _ := reader.ReadString('\n')
		name = strings.TrimSpace(input)
		if name == "" {
			name = "My Toolbar"
		}
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = slug(name) + definition.Ext
	}

	if _, err := os.Stat(outputPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: file %q already exists\n", outputPath)
		os.Exit(1)
	}

	if err := definition.Save(definition.Sample(name), outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s\n", outputPath)
}

// slug lowercases name and joins its words with dashes.
func slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
