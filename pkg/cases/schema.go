package cases

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// GenerateJSONSchema returns a JSON Schema describing the case file format.
func GenerateJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true

	schema := r.Reflect(&Suite{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding schema: %w", err)
	}
	return string(data), nil
}

// JSONSchema implements the jsonschema.JSONSchemaer interface for Case to
// describe its two forms: an expected output or an expected abort. A missing
// input means empty standard input.
func (Case) JSONSchema() *jsonschema.Schema {
	common := func() *orderedmap.OrderedMap[string, *jsonschema.Schema] {
		props := orderedmap.New[string, *jsonschema.Schema]()
		props.Set("name", &jsonschema.Schema{
			Type:        "string",
			MinLength:   ptr(uint64(1)),
			Description: "Unique case name",
		})
		props.Set("description", &jsonschema.Schema{
			Type:        "string",
			Description: "Free-form notes about the case",
		})
		props.Set("input", &jsonschema.Schema{
			Type:        "string",
			Description: "Standard input fed to the probe",
		})
		return props
	}

	withOutput := common()
	withOutput.Set("output", &jsonschema.Schema{
		Type:        "string",
		MinLength:   ptr(uint64(1)),
		Description: "Exact expected standard output, e.g. {42}{hello}",
	})
	withOutput.Set("abort", &jsonschema.Schema{
		Type:        "boolean",
		Const:       false,
		Description: "May be set to false alongside output",
	})

	withAbort := common()
	withAbort.Set("abort", &jsonschema.Schema{
		Type:        "boolean",
		Const:       true,
		Description: "Expect a failed stream check and no output",
	})

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{
				Type:                 "object",
				Description:          "Case expecting a specific output",
				Properties:           withOutput,
				Required:             []string{"name", "output"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
			{
				Type:                 "object",
				Description:          "Case expecting the probe to abort",
				Properties:           withAbort,
				Required:             []string{"name", "abort"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
