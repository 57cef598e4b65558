package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/typetour/typetour/session"
	"github.com/typetour/typetour/tour"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("stacks", "s", false, "Generate the schema of `stack ls --json` instead")
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the structured list outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch t {
			case reflect.TypeOf(tour.Example{}):
				return "example"
			case reflect.TypeOf(session.Info{}):
				return "stack"
			}
			return t.Name()
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("stacks")) {
			schema = reflector.Reflect([]session.Info{})
		} else {
			schema = reflector.Reflect([]*tour.Example{})
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
