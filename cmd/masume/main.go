// Package main provides the masume CLI tool.
//
// Usage:
//
//	go tool masume <command> [arguments]
//
// Commands:
//
//	inspect     Parse a map, tileset or world file and print a summary
//	help        Show help for a command
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/yomogi/masume/internal/cmd/inspect"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "inspect":
		if err := inspect.Run(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help":
		if len(args) > 0 {
			printCommandHelp(args[0])
		} else {
			printUsage()
		}
	case "version":
		fmt.Printf("masume version %s\n", version)
	case "-h", "--help":
		printUsage()
	case "-v", "--version":
		fmt.Printf("masume version %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`masume - Tiled map file parser

Usage:
  go tool masume <command> [arguments]

Commands:
  inspect     Parse a map, tileset or world file and print a summary
  help        Show help for a command
  version     Show version information

Use "go tool masume help <command>" for more information about a command.`)
}

func printCommandHelp(cmd string) {
	switch cmd {
	case "inspect":
		inspect.PrintHelp()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
}
