// Package main provides the larder CLI, a thin wrapper around the store
// library for creating, inspecting, and stamping larder files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
