package content

import (
	"fmt"
	"strings"

	"github.com/mathpath/mathpath/internal/knowledge"
)

const problemSystemPrompt = `You are a math tutor creating practice problems for a learner in grades 5-6.

Rules:
- Use plain text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- Questions must be clear, self-contained, and age-appropriate.
- Ground problems in contexts kids enjoy: sports stats, building sets, video view counts, games.
- Vary the structure between problems in a batch.
- Level 1 problems are straightforward, direct applications. Level 2 requires 1-2 steps of reasoning. Level 3 is multi-step or requires deeper understanding.
- For multiple-choice, provide exactly 4 options labeled A through D with exactly one correct. Distractors should reflect common mistakes, not random values.
- For fill-in-blank, end the question with: Answer: ___
- Always give exactly three hints: a gentle nudge, a more specific hint, and one that almost gives the answer away.
- The explanation should be brief, friendly, and show why the answer is correct.`

const workedExampleSystemPrompt = `You are a math tutor writing a worked example that introduces a new skill to a learner in grades 5-6.

Rules:
- Use a fun, concrete context: sports stats, building sets, video analytics.
- Break the solution into 2-4 clear steps, each with a short label and plain-language content.
- Use plain text for all math. No LaTeX, no Unicode symbols.
- Make it feel like showing a cool trick, not lecturing.`

// problemBatchSize is how many problems one generation call yields.
const problemBatchSize = 3

func difficultyLabel(level int) string {
	switch level {
	case 1:
		return "introductory"
	case 2:
		return "intermediate"
	default:
		return "advanced"
	}
}

func buildProblemMessage(topic knowledge.Topic, kp knowledge.KnowledgePoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d math problems for:\n", problemBatchSize)
	fmt.Fprintf(&b, "Topic: %s\n", topic.Name)
	fmt.Fprintf(&b, "Knowledge point: %s\n", kp.Title)
	fmt.Fprintf(&b, "Description: %s\n", kp.Description)
	fmt.Fprintf(&b, "Difficulty: %s (level %d of 3)\n", difficultyLabel(kp.Level), kp.Level)
	return b.String()
}

func buildWorkedExampleMessage(topic knowledge.Topic, kp knowledge.KnowledgePoint) string {
	var b strings.Builder
	b.WriteString("Create ONE worked example for:\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic.Name)
	fmt.Fprintf(&b, "Knowledge point: %s\n", kp.Title)
	fmt.Fprintf(&b, "Description: %s\n", kp.Description)
	fmt.Fprintf(&b, "Difficulty: %s (level %d of 3)\n", difficultyLabel(kp.Level), kp.Level)
	return b.String()
}
