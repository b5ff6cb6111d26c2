// Table add command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tableAddForce bool

var tableAddCmd = &cobra.Command{
	Use:   "add NAME COLUMNS",
	Short: "Add a table, replacing an existing one after confirmation",
	Long: `Add a table to the open store. COLUMNS is a comma-separated schema
description, for example:

    larder table add people "Id INTEGER, Name TEXT, Price INTEGER"

If the table already exists you are asked before it is replaced; replacing
is atomic, so a failed replace leaves the old table untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		columns, err := parseColumns(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "table add:", err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "table add:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		added, err := store.AddTable(name, columns, tableAddForce)
		if err != nil {
			fmt.Fprintln(os.Stderr, "table add:", err)
			os.Exit(exitUserError)
		}
		if !added {
			fmt.Fprintf(cmd.OutOrStdout(), "Add table %s cancelled\n", name)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added table %s\n", name)
		return nil
	},
}

func init() {
	tableAddCmd.Flags().BoolVar(&tableAddForce, "force", false, "replace an existing table without asking")
}
