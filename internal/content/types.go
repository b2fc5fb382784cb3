// Package content fetches practice problems and worked examples from
// an LLM provider, validates them, and fronts them with a persistent
// cache keyed by knowledge point.
package content

// ProblemType indicates how the learner answers a problem.
type ProblemType string

const (
	// MultipleChoice presents a fixed choice list with one correct entry.
	MultipleChoice ProblemType = "multiple-choice"

	// FillInBlank means the learner types the answer.
	FillInBlank ProblemType = "fill-in-blank"

	// TrueFalse is a two-option statement check.
	TrueFalse ProblemType = "true-false"
)

// Choice is one option of a multiple-choice problem.
type Choice struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	IsCorrect bool   `json:"isCorrect"`
}

// Problem is a generated practice problem ready for display.
type Problem struct {
	ID               string      `json:"id"`
	TopicID          string      `json:"topicId"`
	KnowledgePointID string      `json:"knowledgePointId"`
	Type             ProblemType `json:"type"`

	// Question is the prompt shown to the learner. Plain text.
	Question string `json:"question"`

	// Choices is populated only for multiple-choice problems; exactly
	// one entry has IsCorrect set.
	Choices []Choice `json:"choices,omitempty"`

	// CorrectAnswer is the canonical answer as a string, whatever the
	// problem type.
	CorrectAnswer string `json:"correctAnswer"`

	// Hints are three progressively more revealing nudges.
	Hints [3]string `json:"hints"`

	// Explanation is the worked solution shown after answering.
	Explanation string `json:"explanation"`

	// XPValue is the base XP award, set from the knowledge point level.
	XPValue int `json:"xpValue"`
}

// WorkedExampleStep is one labeled step of a walkthrough.
type WorkedExampleStep struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// WorkedExample is a step-by-step solution shown before practice on a
// new knowledge point.
type WorkedExample struct {
	ID               string              `json:"id"`
	TopicID          string              `json:"topicId"`
	KnowledgePointID string              `json:"knowledgePointId"`
	Title            string              `json:"title"`
	Problem          string              `json:"problem"`
	Steps            []WorkedExampleStep `json:"steps"`
	FinalAnswer      string              `json:"finalAnswer"`
}
