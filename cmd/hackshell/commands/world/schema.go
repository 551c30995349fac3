package world

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/pkg/world"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schema for world files",
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
			FieldNameTag:              "yaml",
		}

		schema := reflector.Reflect(&world.File{})
		schema.Version = "https://json-schema.org/draft/2020-12/schema"
		schema.Title = "Hackshell World"
		schema.Description = "Servers, users and files of a hackshell world"

		schemaJSON, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(schemaJSON))
		return nil
	},
}
