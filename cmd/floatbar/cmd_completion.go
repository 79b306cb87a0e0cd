package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatbar completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  floatbar completion bash > /usr/local/etc/bash_completion.d/floatbar\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  floatbar completion zsh > \"${fpath[1]}/_floatbar\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  floatbar completion fish > ~/.config/fish/completions/floatbar.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	script, err := completionScript(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(script)
}

func completionScript(shell string) (string, error) {
	switch shell {
	case "bash":
		return generateBashCompletion(), nil
	case "zsh":
		return generateZshCompletion(), nil
	case "fish":
		return generateFishCompletion(), nil
	}
	return "", fmt.Errorf("unsupported shell %q (use bash, zsh, or fish)", shell)
}

func generateBashCompletion() string {
	return `# bash completion for floatbar                           -*- shell-script -*-

_floatbar() {
    local cur prev words cword
    _init_completion || return

    local commands="init validate dump settings completion version help"

    local tui_flags="--definition --log-level --version"
    local init_flags="--name --output"
    local dump_flags="--width --height --set --dark --color"
    local settings_flags="--clear"

    local levels="debug info warn error"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --definition|--output)
            COMPREPLY=($(compgen -f -X '!*.floatbar.yaml' -- "${cur}"))
            _filedir -d
            return
            ;;
        --log-level)
            COMPREPLY=($(compgen -W "${levels}" -- "${cur}"))
            return
            ;;
        --name|--width|--height|--set)
            return
            ;;
    esac

    case "${command}" in
        init)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${init_flags}" -- "${cur}"))
            fi
            ;;
        validate)
            COMPREPLY=($(compgen -f -X '!*.floatbar.yaml' -- "${cur}"))
            _filedir -d
            ;;
        dump)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${dump_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -f -X '!*.floatbar.yaml' -- "${cur}"))
                _filedir -d
            fi
            ;;
        settings)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${settings_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -f -X '!*.floatbar.yaml' -- "${cur}"))
                _filedir -d
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _floatbar floatbar
`
}

func generateZshCompletion() string {
	return `#compdef floatbar

# zsh completion for floatbar

_floatbar() {
    local -a commands
    commands=(
        'init:Create a new .floatbar.yaml definition interactively'
        'validate:Validate toolbar definition files'
        'dump:Print the toolbar frame for a definition as JSON'
        'settings:Show or clear the persisted toolbar settings'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--definition[Toolbar definition file]:definition file:_files -g "*.floatbar.yaml"' \
        '--log-level[Log level]:level:(debug info warn error)' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'floatbar commands' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--name[Toolbar name]:name:' \
                        '--output[Output file path]:output file:_files -g "*.floatbar.yaml"'
                    ;;
                validate)
                    _arguments \
                        '*:definition file:_files -g "*.floatbar.yaml"'
                    ;;
                dump)
                    _arguments \
                        '--width[Canvas width in cells]:width:' \
                        '--height[Canvas height in cells]:height:' \
                        '--set[Tool set to show]:index:' \
                        '--dark[Report a dark system color scheme]' \
                        '--color[Syntax-highlight the output]' \
                        '1:definition file:_files -g "*.floatbar.yaml"'
                    ;;
                settings)
                    _arguments \
                        '--clear[Remove the persisted settings]' \
                        '1:definition file:_files -g "*.floatbar.yaml"'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_floatbar "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for floatbar

# Disable file completions by default
complete -c floatbar -f

# Subcommands
complete -c floatbar -n '__fish_use_subcommand' -a init -d 'Create a new .floatbar.yaml definition interactively'
complete -c floatbar -n '__fish_use_subcommand' -a validate -d 'Validate toolbar definition files'
complete -c floatbar -n '__fish_use_subcommand' -a dump -d 'Print the toolbar frame for a definition as JSON'
complete -c floatbar -n '__fish_use_subcommand' -a settings -d 'Show or clear the persisted toolbar settings'
complete -c floatbar -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c floatbar -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c floatbar -n '__fish_use_subcommand' -a help -d 'Show help message'

# interactive flags
complete -c floatbar -n '__fish_use_subcommand' -l definition -d 'Toolbar definition file' -rF
complete -c floatbar -n '__fish_use_subcommand' -l log-level -d 'Log level' -ra 'debug info warn error'
complete -c floatbar -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# init flags
complete -c floatbar -n '__fish_seen_subcommand_from init' -l name -d 'Toolbar name' -r
complete -c floatbar -n '__fish_seen_subcommand_from init' -l output -d 'Output file path' -rF

# validate - file completion
complete -c floatbar -n '__fish_seen_subcommand_from validate' -F

# dump flags
complete -c floatbar -n '__fish_seen_subcommand_from dump' -l width -d 'Canvas width in cells' -r
complete -c floatbar -n '__fish_seen_subcommand_from dump' -l height -d 'Canvas height in cells' -r
complete -c floatbar -n '__fish_seen_subcommand_from dump' -l set -d 'Tool set to show' -r
complete -c floatbar -n '__fish_seen_subcommand_from dump' -l dark -d 'Report a dark system color scheme'
complete -c floatbar -n '__fish_seen_subcommand_from dump' -l color -d 'Syntax-highlight the output'
complete -c floatbar -n '__fish_seen_subcommand_from dump' -F

# settings flags
complete -c floatbar -n '__fish_seen_subcommand_from settings' -l clear -d 'Remove the persisted settings'
complete -c floatbar -n '__fish_seen_subcommand_from settings' -F

# completion - shell names
complete -c floatbar -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
