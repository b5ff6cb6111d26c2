// Table command group for the larder CLI.
package main

import "github.com/spf13/cobra"

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage caller-defined tables in the store",
}

func init() {
	tableCmd.AddCommand(tableAddCmd)
	tableCmd.AddCommand(tableDropCmd)
	tableCmd.AddCommand(tableListCmd)
}
