package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestArrayContract(t *testing.T) {
	contract := ArrayContract("report_items", "Report items", "items", map[string]any{
		"title": map[string]any{"type": "string"},
		"id":    map[string]any{"type": "integer"},
	})

	assert.Equal(t, "report_items", contract.Name)
	assert.Equal(t, "object", contract.Schema["type"])
	assert.Equal(t, false, contract.Schema["additionalProperties"])
	assert.Equal(t, []string{"items"}, contract.Schema["required"])

	props, required := contract.properties()
	assert.Equal(t, []string{"items"}, required)

	array := props["items"].(map[string]any)
	assert.Equal(t, "array", array["type"])

	item := array["items"].(map[string]any)
	assert.Equal(t, "object", item["type"])
	assert.Equal(t, []string{"id", "title"}, item["required"])
	assert.Equal(t, false, item["additionalProperties"])
}
