// Create command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createVersion string
	createForce   bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new store file stamped with a version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		store, err := newStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		created, err := store.Create(path, createVersion, createForce)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}
		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "Create %s cancelled\n", path)
			return nil
		}
		defer store.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (version %s)\n", path, createVersion)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createVersion, "store-version", "", "version stamped into the new store (required)")
	createCmd.Flags().BoolVar(&createForce, "force", false, "overwrite an existing store without asking")

	createCmd.MarkFlagRequired("store-version")
}
