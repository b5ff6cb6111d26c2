// Table drop command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tableDropForce bool

var tableDropCmd = &cobra.Command{
	Use:   "drop NAME",
	Short: "Drop a table after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "table drop:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		dropped, err := store.DropTable(name, tableDropForce)
		if err != nil {
			fmt.Fprintln(os.Stderr, "table drop:", err)
			os.Exit(exitUserError)
		}
		if !dropped {
			fmt.Fprintf(cmd.OutOrStdout(), "Drop table %s cancelled\n", name)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Dropped table %s\n", name)
		return nil
	},
}

func init() {
	tableDropCmd.Flags().BoolVar(&tableDropForce, "force", false, "drop without asking")
}
