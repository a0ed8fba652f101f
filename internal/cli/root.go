// Package cli wires tcosecheck's cobra subcommands together.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/veracruz-project/t-cose-go/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCommand builds the tcosecheck root command.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tcosecheck",
		Short:        "Verify and inspect COSE_Sign1 messages",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file path (default key path and option flags)")

	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}
