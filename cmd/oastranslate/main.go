// Command oastranslate is the CLI front end for the translator package:
// one process per invocation, one translate (or test) command per run.
//
// Grounded on the teacher's cmd/oastools/main.go dispatch shape: a
// switch over os.Args[1], per-command Handle functions in a commands
// subpackage, and Levenshtein-distance typo suggestions on an unknown
// command name.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oastranslator/cmd/oastranslate/commands"
	"github.com/erraggy/oastranslator/internal/cliutil"
)

// validCommands lists all valid command names for typo suggestions.
var validCommands = []string{"translate", "test", "version", "help"}

// levenshteinDistance calculates the minimum edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range len(b) + 1 {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// suggestCommand returns the closest matching command if the edit distance is <= 2.
func suggestCommand(input string) string {
	var bestMatch string
	bestDistance := 3

	for _, cmd := range validCommands {
		dist := levenshteinDistance(input, cmd)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = cmd
		}
	}

	return bestMatch
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println("oastranslate (template-driven OpenAPI v3 translator)")
	case "help", "-h", "--help":
		printUsage()
	case "translate":
		if err := commands.HandleTranslate(os.Args[2:]); err != nil {
			cliutil.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "test":
		if err := commands.HandleTest(os.Args[2:]); err != nil {
			cliutil.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oastranslate - template-driven OpenAPI v3 translator

Usage:
  oastranslate <command> [options]

Commands:
  translate   Translate one OpenAPI spec through a target's scripts
  test        Run translate against every fixture under a test directory
  version     Show version information
  help        Show this help message

Global options (accepted by every subcommand):
  --target-parameters JSON   overrides any x-ot-target-parameters in the spec
  --target-scripts PATH      directory holding the Target prelude script
  --visitors-scripts PATH    directory holding every other script file

Examples:
  oastranslate translate --target-scripts ./scripts/target --visitors-scripts ./scripts/visitors --spec api.yaml --out ./out
  oastranslate translate --visitors-scripts ./scripts/visitors --target-scripts ./scripts/target --spec api.yaml --out ./out --clean --expected ./want
  oastranslate test --target-scripts ./scripts/target --visitors-scripts ./scripts/visitors --tests ./testdata
  oastranslate test --tests ./testdata -n pet-store -n inventory

Run 'oastranslate <command> --help' for more information on a command.`)
}
