package llm

import (
	"maps"
	"slices"
)

// ArrayContract describes an object holding a single required array under key whose
// items are objects with exactly the given properties, all required.
func ArrayContract(name, description, key string, itemProperties map[string]any) OutputContract {
	required := slices.Sorted(maps.Keys(itemProperties))

	return OutputContract{
		Name:        name,
		Description: description,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				key: map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"properties":           itemProperties,
						"required":             required,
						"additionalProperties": false,
					},
				},
			},
			"required":             []string{key},
			"additionalProperties": false,
		},
	}
}

// properties returns the top-level properties and required list of a contract schema,
// the two pieces tool input schemas are built from.
func (c OutputContract) properties() (map[string]any, []string) {
	props, _ := c.Schema["properties"].(map[string]any)
	required, _ := c.Schema["required"].([]string)
	return props, required
}
