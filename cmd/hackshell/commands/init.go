package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/internal/cli/prompt"
	"github.com/hackshell/hackshell/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample hackshell configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/hackshell/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  hackshell init

  # Initialize with custom path
  hackshell init --config ./hackshell.yaml

  # Overwrite an existing config without asking
  hackshell init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := GetConfigFile()
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	_, statErr := os.Stat(configPath)
	ok, err := prompt.ConfirmOverwrite(configPath, statErr == nil, initForce)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	if GetConfigFile() != "" {
		err = config.InitConfigToPath(configPath, true)
	} else {
		configPath, err = config.InitConfig(true)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file created at: %s\n", configPath)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Edit the configuration file to customize your game")
	_, _ = fmt.Fprintln(out, "  2. Start playing with: hackshell play")
	_, _ = fmt.Fprintf(out, "  3. Or specify custom config: hackshell play --config %s\n", configPath)
	return nil
}
