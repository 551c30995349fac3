package world

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/internal/cli/output"
	"github.com/hackshell/hackshell/internal/cli/prompt"
	"github.com/hackshell/hackshell/pkg/world"
)

var (
	generateOutput  string
	generateServers int
	generateSeed    uint64
	generateForce   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random world file",
	Long: `Generate a random world and write it as YAML.

The same seed always produces the same world.

Examples:
  # Print a world to stdout
  hackshell world generate

  # Save a 20 server world
  hackshell world generate --servers 20 --seed 42 -o world.yaml`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().IntVar(&generateServers, "servers", world.DefaultServerCount, "Number of remote servers")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Generator seed (0 picks a random seed)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite an existing file without asking")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateServers < 1 {
		return fmt.Errorf("--servers must be at least 1")
	}

	w := world.Generate(world.GenerateOptions{Servers: generateServers, Seed: generateSeed})

	if generateOutput == "" {
		return output.PrintYAML(cmd.OutOrStdout(), w.ToFile())
	}

	_, statErr := os.Stat(generateOutput)
	ok, err := prompt.ConfirmOverwrite(generateOutput, statErr == nil, generateForce)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	if err := world.Save(generateOutput, w.ToFile()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "World with %d servers written to %s\n", w.Registry.Len(), generateOutput)
	return nil
}
