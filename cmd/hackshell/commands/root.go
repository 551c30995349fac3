// Package commands implements the hackshell command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/cmd/hackshell/commands/config"
	"github.com/hackshell/hackshell/cmd/hackshell/commands/world"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hackshell",
	Short: "Hackshell - a terminal hacking game",
	Long: `Hackshell is a terminal hacking game. You start on your home machine and
connect to simulated servers, log in with stolen credentials and poke
around their file systems.

Use "hackshell play" to start a session and "hackshell [command] --help"
for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/hackshell/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(world.Cmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// GetConfigFile returns the config file path from the global flag.
func GetConfigFile() string {
	return cfgFile
}
