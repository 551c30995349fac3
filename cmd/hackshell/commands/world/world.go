// Package world implements world file subcommands.
package world

import (
	"github.com/spf13/cobra"
)

// Cmd is the world subcommand.
var Cmd = &cobra.Command{
	Use:   "world",
	Short: "World file management",
	Long: `Generate and inspect world files.

A world file lists the player's home server and every remote server with
its users and files. Point world.file in the configuration (or
HACKSHELL_WORLD_FILE) at one to play in a fixed world.

Subcommands:
  generate  Generate a random world file
  list      List the servers of a world file
  schema    Generate JSON schema for world files`,
}

func init() {
	Cmd.AddCommand(generateCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(schemaCmd)
}
