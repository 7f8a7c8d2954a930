// Package cli provides the scenaudit command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/config"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/logger"
)

// Version is set at build time.
var Version = "0.2.0"

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scenaudit",
		Short: "Audit and batch-rewrite IDs in scenario trigger data",
		Long: `scenaudit audits scenario trigger exports for unit, technology and
instance ID references, and applies batch old->new ID mappings without
corrupting slots that merely share the number: unit instance
references and the object_type/object_type2 category filters are never
rewritten.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log = logger.Setup(cfg)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./scenaudit.yaml)")
	rootCmd.PersistentFlags().String("scenarios-dir", "", "Directory of scenario exports")
	rootCmd.PersistentFlags().String("journal-path", "", "Path to the run journal database")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table, markdown, json)")

	rootCmd.AddCommand(newCatalogCommand())
	rootCmd.AddCommand(newAuditCommand())
	rootCmd.AddCommand(newReplaceUnitCommand())
	rootCmd.AddCommand(newReplaceTechCommand())
	rootCmd.AddCommand(newReplaceMapCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the scenaudit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scenaudit %s\n", Version)
		},
	})

	return rootCmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
