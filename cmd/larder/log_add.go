// Log add command for the larder CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var logAddKind string

var logAddCmd = &cobra.Command{
	Use:   "add TEXT...",
	Short: "Append one entry to the history log",
	Long: `Append one entry of the given kind to the history log. Version
entries move the store version:

    larder log add --kind version 2.0
    larder log add --kind warning "schema drift detected"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "log add:", err)
			os.Exit(exitUserError)
		}
		defer store.Close()

		switch logAddKind {
		case types.KindMessage:
			err = store.LogMessage(text)
		case types.KindWarning:
			err = store.LogWarning(text)
		case types.KindError:
			err = store.LogError(text)
		case types.KindVersion:
			err = store.LogVersion(text)
		default:
			fmt.Fprintf(os.Stderr, "log add: invalid kind %q (valid: message, warning, error, version)\n", logAddKind)
			os.Exit(exitUserError)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "log add:", err)
			os.Exit(exitSysError)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s entry\n", logAddKind)
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringVar(&logAddKind, "kind", types.KindMessage, "entry kind (message, warning, error, version)")
}
