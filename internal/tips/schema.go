package tips

import "github.com/pms-safya/abacus/internal/llm"

// TipSchema defines the JSON schema for a coach tip.
var TipSchema = &llm.Schema{
	Name:        "coach-tip",
	Description: "One short encouraging practice tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip": map[string]any{
				"type":        "string",
				"description": "A single encouraging sentence, at most 20 words",
				"minLength":   1,
			},
		},
		"required":             []any{"tip"},
		"additionalProperties": false,
	},
}
