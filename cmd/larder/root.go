// Root command for the larder CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/larder"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagStore     string
	flagVerbosity int
	flagJSON      bool
	flagYes       bool
)

// configStorePath and configVerbosity hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configStorePath string
	configVerbosity int
)

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Larder manages a SQLite file as a versioned container for tabular data",
	Long: `Larder wraps one SQLite file as a versioned, self-describing container:
table creation and removal are gated behind confirmation, and every
lifecycle event lands in an append-only history log that also records
the store version.`,
	Version:      larder.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configStorePath = cfg.GetString(cfgKeyStore)
		configVerbosity = cfg.GetInt(cfgKeyVerbosity)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store file (default: $(CWD)/larder.db)")
	rootCmd.PersistentFlags().IntVar(&flagVerbosity, "verbosity", 0, "trace level echoed to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagYes, "yes", false, "answer yes to every overwrite prompt")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(logCmd)
}
