package main

import (
	"fmt"
	"os"
	"strings"
)

const usageText = `cheatsheet lists the key bindings of an editor's packages.

Usage:
  cheatsheet [command] [flags]

Commands:
  pick       browse bindings and run one (default)
  list       print every binding as a table
  conflicts  print key combos bound to more than one command
  export     write bindings and conflicts as md, json, yaml or toml
  print      render the cheat sheet as styled markdown
  explain    show the label computed for a command and its arguments
  history    show or clear recorded invocations
  config     print the effective configuration
  help       show help

Common flags:
  --config <file>   read this config file instead of the default locations

Examples:
  cheatsheet
  cheatsheet list --context
  cheatsheet conflicts --watch
  cheatsheet export --format yaml --output bindings.yaml
  cheatsheet explain toggle_comment '{"block": true}'
  cheatsheet history --limit 10
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isHelp(args[0])) {
		args = append([]string{"pick"}, args...)
	}

	if isHelp(args[0]) {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
