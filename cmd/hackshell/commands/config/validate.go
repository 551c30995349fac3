package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load a configuration file and report the first problem found.

Examples:
  hackshell config validate
  hackshell config validate --config ./hackshell.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	if _, err := config.MustLoad(configPath); err != nil {
		return err
	}

	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", configPath)
	return nil
}
