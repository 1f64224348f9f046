// Package main provides the lc entry point, a short alias for langcode.
// Both binaries share the same command tree, so behavior is identical.
package main

import (
	"fmt"
	"os"

	"github.com/langcode/langcode/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
