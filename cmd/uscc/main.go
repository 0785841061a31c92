// Command uscc validates Unified Social Credit Codes.
//
// Usage:
//
//	uscc <CODE>...
//	uscc -q | --quiet <CODE>...
//	uscc -v | --version
//
// Examples:
//
//	$ uscc 91350100M000100Y43
//	91350100M000100Y43: ✓
//
//	$ uscc 91350100M000100Y44
//	91350100M000100Y44: ✗ check character mismatch
//
// Flags:
//
//	-q, --quiet  Print nothing; report through the exit status only
//	-v, --version  Show version information
//
// Exit status is 0 when every code is valid, 1 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/cv/uscc/codes"
)

// Version information set by goreleaser ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, "usage: uscc [-q|--quiet] <CODE>...\n")
		return 1
	}

	// Handle version flag
	if args[0] == "-v" || args[0] == "--version" {
		fmt.Printf("uscc %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	quiet := false
	if args[0] == "-q" || args[0] == "--quiet" {
		quiet = true
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, "usage: uscc [-q|--quiet] <CODE>...\n")
		return 1
	}

	status := 0
	for _, code := range args {
		reason := codes.ValidateUSCC(code)
		if reason != codes.OK {
			status = 1
		}
		if quiet {
			continue
		}
		if reason == codes.OK {
			fmt.Printf("%s: ✓\n", code)
		} else {
			fmt.Printf("%s: ✗ %s\n", code, reason)
		}
	}
	return status
}
