// Info command for the larder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// storeInfo is the JSON shape printed by `larder info --json`.
type storeInfo struct {
	Path    string   `json:"path"`
	Version string   `json:"version"`
	Tables  []string `json:"tables"`
	Entries int      `json:"history_entries"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the store version, tables, and history size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "info:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		tables, err := store.Tables()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list tables:", err)
			os.Exit(exitSysError)
		}
		entries, err := store.History()
		if err != nil {
			fmt.Fprintln(os.Stderr, "read history:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(storeInfo{
				Path:    store.Path(),
				Version: store.Version(),
				Tables:  tables,
				Entries: len(entries),
			}, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Store:   %s\n", store.Path())
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", store.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "Tables:  %s\n", strings.Join(tables, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "History: %d entries\n", len(entries))
		return nil
	},
}
