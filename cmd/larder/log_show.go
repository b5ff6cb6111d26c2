// Log show command for the larder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the history log in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "log show:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		entries, err := store.History()
		if err != nil {
			fmt.Fprintln(os.Stderr, "log show:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s  %s\n",
				e.Time.Format(time.RFC3339), e.Kind, e.Event)
		}
		return nil
	},
}
