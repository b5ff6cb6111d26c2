// Log command group for the larder CLI.
package main

import "github.com/spf13/cobra"

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Append to and inspect the store history log",
}

func init() {
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logShowCmd)
}
