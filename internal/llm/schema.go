package llm

// BuildAnalysisJSONSchema returns the schema (draft 2020-12 subset) every
// model reply must satisfy, as a generic map. All five fields are required;
// extra keys are rejected.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type": map[string]any{"type": "string", "minLength": 1},
			"explanation":   map[string]any{"type": "string", "minLength": 1},
			"key_details":   stringArrayProp(),
			"calculations":  stringArrayProp(),
			"insights":      map[string]any{"type": "string"},
		},
		"required": []string{"document_type", "explanation", "key_details", "calculations", "insights"},
	}
}

func stringArrayProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
