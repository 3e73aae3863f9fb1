package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	for input, want := range map[string]string{
		"gemini-flash":      "gemini-2.5-flash",
		"gemini-flash-lite": "gemini-2.5-flash-lite",
		"gemini-pro":        "gemini-2.5-pro",
		"gemini-2.0-flash":  "gemini-2.0-flash",
	} {
		assert.Equal(t, want, resolveModel(input, geminiModels), input)
	}

	_, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"})
	assert.Error(t, err, "API key is required")
}

func TestGeminiSchema_Drill(t *testing.T) {
	schema := geminiSchema(drillSchema.Definition)

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 3)
	assert.ElementsMatch(t, []string{"rule", "rows"}, schema.Required)

	rule := schema.Properties["rule"]
	assert.Equal(t, genai.TypeString, rule.Type)
	assert.Equal(t, []string{"standard", "small-friends", "big-friends", "mixed-friends"}, rule.Enum)

	rows := schema.Properties["rows"]
	assert.Equal(t, genai.TypeArray, rows.Type)
	require.NotNil(t, rows.Items)
	assert.Equal(t, genai.TypeInteger, rows.Items.Type)

	assert.Nil(t, schema.Properties["note"].Items)
}

func TestGeminiSchema_GoLiterals(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type":     "object",
		"required": []string{"tip"},
		"properties": map[string]any{
			"tip":   map[string]any{"type": "string", "description": "one sentence"},
			"score": map[string]any{"type": "number"},
			"ok":    map[string]any{"type": "boolean"},
			"level": map[string]any{"type": "tuple"},
		},
	})

	assert.Equal(t, []string{"tip"}, schema.Required)
	assert.Equal(t, "one sentence", schema.Properties["tip"].Description)
	assert.Equal(t, genai.TypeNumber, schema.Properties["score"].Type)
	assert.Equal(t, genai.TypeBoolean, schema.Properties["ok"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["level"].Type, "unknown types fall back to string")
}

func TestGeminiContents_Roles(t *testing.T) {
	contents := geminiContents([]Message{
		{Role: RoleUser, Content: "Topic: big friends"},
		{Role: RoleAssistant, Content: `{"tip":"Take ten, give back the rest."}`},
	})
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	require.Len(t, contents[1].Parts, 1)
	assert.Equal(t, `{"tip":"Take ten, give back the rest."}`, contents[1].Parts[0].Text)
}
