package knowledge

import (
	"fmt"
	"slices"
)

// graph holds the topic DAG with precomputed indices.
type graph struct {
	topics     []Topic
	byID       map[string]*Topic
	byCategory map[Category][]Topic
	roots      []Topic
	dependents map[string][]string
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a validated slice of topics.
// Topics keep their declaration order in every index.
func buildGraph(topics []Topic) *graph {
	gr := &graph{
		topics:     topics,
		byID:       make(map[string]*Topic, len(topics)),
		byCategory: make(map[Category][]Topic),
		dependents: make(map[string][]string),
	}

	for i := range gr.topics {
		t := &gr.topics[i]
		gr.byID[t.ID] = t
		gr.byCategory[t.Category] = append(gr.byCategory[t.Category], *t)
		if len(t.Prerequisites) == 0 {
			gr.roots = append(gr.roots, *t)
		}
		for _, e := range t.Prerequisites {
			gr.dependents[e.TopicID] = append(gr.dependents[e.TopicID], t.ID)
		}
	}

	return gr
}

// GetTopic returns a topic by ID, or ErrTopicNotFound.
func GetTopic(id string) (Topic, error) {
	t, ok := g.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %q", ErrTopicNotFound, id)
	}
	return *t, nil
}

// AllTopics returns all topics in declaration order.
func AllTopics() []Topic {
	return slices.Clone(g.topics)
}

// ByCategory returns all topics in a category, in declaration order.
func ByCategory(c Category) []Topic {
	return slices.Clone(g.byCategory[c])
}

// RootTopics returns all topics with no prerequisites.
func RootTopics() []Topic {
	return slices.Clone(g.roots)
}

// Prerequisites resolves the direct prerequisite topics of the given topic.
// Unresolvable edge ids are skipped.
func Prerequisites(id string) []Topic {
	t, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Topic, 0, len(t.Prerequisites))
	for _, e := range t.Prerequisites {
		if p, ok := g.byID[e.TopicID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the topics that list the given topic as a prerequisite.
func Dependents(id string) []Topic {
	depIDs := g.dependents[id]
	result := make([]Topic, 0, len(depIDs))
	for _, depID := range depIDs {
		if t, ok := g.byID[depID]; ok {
			result = append(result, *t)
		}
	}
	return result
}

// Weight returns the prerequisite edge weight between an advanced topic and
// one of its prerequisites, or 0 if no such edge exists.
func Weight(advancedID, prereqID string) float64 {
	t, ok := g.byID[advancedID]
	if !ok {
		return 0
	}
	for _, e := range t.Prerequisites {
		if e.TopicID == prereqID {
			return e.Weight
		}
	}
	return 0
}

// Validate re-checks the seeded graph for structural issues.
func Validate() error {
	return validateTopics(g.topics)
}
