package explain

import "github.com/serkanatas/kopya/internal/llm"

// ExplanationSchema defines the JSON shape of a pair explanation.
var ExplanationSchema = &llm.Schema{
	Name:        "pair-explanation",
	Description: "Plain-language reading of the similarity statistics for one examinee pair",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to four sentences explaining what the statistics say about this pair, for a non-statistician",
			},
			"severity": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "moderate", "high"},
				"description": "Overall strength of the statistical evidence",
			},
			"caveats": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Reasons the evidence could be weaker than it looks (small exam, common wrong answers, seating unknown)",
			},
		},
		"required":             []any{"summary", "severity", "caveats"},
		"additionalProperties": false,
	},
}
