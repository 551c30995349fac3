package config

import (
	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/internal/cli/output"
	"github.com/hackshell/hackshell/pkg/config"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the configuration hackshell would play with: the config file
merged with HACKSHELL_* environment variables and defaults.

Examples:
  # Show as YAML
  hackshell config show

  # Show as JSON
  hackshell config show --output json

  # Check an environment override
  HACKSHELL_SHELL_STRICT=true hackshell config show`,
	RunE: runConfigShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(showOutput)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(cmd.OutOrStdout(), cfg)
	default:
		return output.PrintYAML(cmd.OutOrStdout(), cfg)
	}
}
