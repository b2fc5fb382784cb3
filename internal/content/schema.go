package content

import "github.com/mathpath/mathpath/internal/llm"

// hintsSchema requires exactly three progressively revealing hints.
var hintsSchema = map[string]any{
	"type":        "array",
	"items":       map[string]any{"type": "string"},
	"minItems":    3,
	"maxItems":    3,
	"description": "Three hints: a gentle nudge, a more specific hint, and one that almost gives the answer away",
}

// ProblemBatchSchema constrains the response for a batch of practice
// problems. The batch is wrapped in an object because structured-output
// backends reject top-level arrays.
var ProblemBatchSchema = &llm.Schema{
	Name:        "problem-batch",
	Description: "A batch of math practice problems with answers, hints, and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple-choice", "fill-in-blank", "true-false"},
							"description": "How the learner answers",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, in plain text. Fill-in-blank questions end with: Answer: ___",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label":     map[string]any{"type": "string"},
									"value":     map[string]any{"type": "string"},
									"isCorrect": map[string]any{"type": "boolean"},
								},
								"required":             []any{"label", "value", "isCorrect"},
								"additionalProperties": false,
							},
							"description": "Exactly 4 options for multiple-choice, labeled A-D with exactly one correct. Empty for other types.",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer value as a string",
						},
						"hints": hintsSchema,
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief, friendly explanation of why the answer is correct",
						},
					},
					"required":             []any{"type", "question", "choices", "correctAnswer", "hints", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"problems"},
		"additionalProperties": false,
	},
}

// WorkedExampleSchema constrains the response for a single step-by-step
// walkthrough.
var WorkedExampleSchema = &llm.Schema{
	Name:        "worked-example",
	Description: "A step-by-step worked example introducing a new skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short catchy title for the example",
			},
			"problem": map[string]any{
				"type":        "string",
				"description": "The full problem statement",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label":   map[string]any{"type": "string", "description": "Short step label, e.g. 'Step 1: Find the total'"},
						"content": map[string]any{"type": "string", "description": "What to do in this step and the result"},
					},
					"required":             []any{"label", "content"},
					"additionalProperties": false,
				},
				"minItems":    2,
				"maxItems":    4,
				"description": "2 to 4 clearly labeled solution steps",
			},
			"finalAnswer": map[string]any{
				"type":        "string",
				"description": "The answer with a one-line justification",
			},
		},
		"required":             []any{"title", "problem", "steps", "finalAnswer"},
		"additionalProperties": false,
	},
}
