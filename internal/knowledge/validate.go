package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTopicNotFound is returned by lookups for ids absent from the graph.
var ErrTopicNotFound = errors.New("topic not found")

// IntegrityError reports structural problems found while building the graph.
// It is fatal: a graph with dangling edges or cycles has no safe degraded mode.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("knowledge graph integrity check failed:\n  %s",
		strings.Join(e.Problems, "\n  "))
}

// validateTopics performs all structural checks on the given topic set.
// Returns an *IntegrityError describing every problem found, or nil.
func validateTopics(topics []Topic) error {
	var problems []string

	idSet := make(map[string]bool, len(topics))
	catSet := make(map[Category]bool)

	for _, t := range topics {
		if idSet[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true
		catSet[t.Category] = true
	}

	// Dangling prerequisites and out-of-range edge weights.
	for _, t := range topics {
		for _, e := range t.Prerequisites {
			if !idSet[e.TopicID] {
				problems = append(problems,
					fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.ID, e.TopicID))
			}
			if e.Weight <= 0 || e.Weight > 1 {
				problems = append(problems,
					fmt.Sprintf("topic %q edge to %q: weight must be in (0, 1], got %g", t.ID, e.TopicID, e.Weight))
			}
		}
	}

	// Cycle detection using Kahn's algorithm.
	inDegree := make(map[string]int, len(topics))
	adjList := make(map[string][]string)
	for _, t := range topics {
		inDegree[t.ID] = len(t.Prerequisites)
		for _, e := range t.Prerequisites {
			adjList[e.TopicID] = append(adjList[e.TopicID], t.ID)
		}
	}

	var queue []string
	for _, t := range topics {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(topics) {
		var cycleNodes []string
		for _, t := range topics {
			if inDegree[t.ID] > 0 {
				cycleNodes = append(cycleNodes, t.ID)
			}
		}
		problems = append(problems,
			fmt.Sprintf("cycle detected involving topics: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one entry point.
	hasRoot := false
	for _, t := range topics {
		if len(t.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot && len(topics) > 0 {
		problems = append(problems, "no root topics found (at least one topic must have no prerequisites)")
	}

	// All declared categories are populated.
	for _, c := range AllCategories() {
		if !catSet[c] && len(topics) > 0 {
			problems = append(problems, fmt.Sprintf("category %q has no topics", c))
		}
	}

	// Exactly three knowledge points, levels 1-3, ids unique and owned.
	for _, t := range topics {
		for i, kp := range t.KnowledgePoints {
			prefix := fmt.Sprintf("topic %q knowledge point %d", t.ID, i)
			if kp.Level != i+1 {
				problems = append(problems, fmt.Sprintf("%s: level must be %d, got %d", prefix, i+1, kp.Level))
			}
			if kp.TopicID != t.ID {
				problems = append(problems, fmt.Sprintf("%s: owner mismatch %q", prefix, kp.TopicID))
			}
			if kp.ID == "" {
				problems = append(problems, fmt.Sprintf("%s: empty ID", prefix))
			}
		}
	}

	if len(problems) > 0 {
		return &IntegrityError{Problems: problems}
	}
	return nil
}
