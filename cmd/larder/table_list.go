// Table list command for the larder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tableListCmd = &cobra.Command{
	Use:   "list",
	Short: "List caller-defined tables in the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "table list:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		tables, err := store.Tables()
		if err != nil {
			fmt.Fprintln(os.Stderr, "table list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(tables, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		for _, name := range tables {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
