package tftlayout

import (
	"encoding/json"
	"fmt"

	"github.com/bodgit/tftlayout/manifest"
	"github.com/invopop/jsonschema"
)

const schemaBase = "https://github.com/bodgit/tftlayout/"

// JSONSchema describes a Dimension as an integer or a numeric string.
func (Dimension) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("1")},
			{Type: "string", Pattern: "^[0-9]+$"},
		},
	}
}

// Schemas lists the documents Schema can describe.
var Schemas = []string{"layout", "manifest"}

// Schema returns the JSON Schema of the layout document or the export
// manifest.
func Schema(name string) ([]byte, error) {
	r := new(jsonschema.Reflector)

	var s *jsonschema.Schema
	switch name {
	case "layout":
		s = r.Reflect(&Document{})
		s.Title = "Layout"
		s.Description = "Canvas size and ordered elements of a screen layout"
	case "manifest":
		s = r.Reflect(&manifest.Manifest{})
		s.Title = "Manifest"
		s.Description = "Placement of exported RAW files; the background is the first element"
	default:
		return nil, newError(ErrValidation, "schema", "", fmt.Errorf("unknown schema %q", name))
	}
	s.ID = jsonschema.ID(schemaBase + name + ".schema.json")

	return json.MarshalIndent(s, "", "  ")
}
