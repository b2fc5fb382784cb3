package knowledge

// Category represents a math content category.
type Category string

const (
	CategoryWholeNumbers Category = "whole-numbers"
	CategoryFractions    Category = "fractions"
	CategoryDecimals     Category = "decimals"
	CategoryPercentages  Category = "percentages"
	CategoryRatios       Category = "ratios"
	CategoryGeometry     Category = "geometry"
	CategoryAlgebra      Category = "algebra"
	CategoryData         Category = "data"
	CategoryWordProblems Category = "word-problems"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWholeNumbers,
		CategoryFractions,
		CategoryDecimals,
		CategoryPercentages,
		CategoryRatios,
		CategoryGeometry,
		CategoryAlgebra,
		CategoryData,
		CategoryWordProblems,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryWholeNumbers:
		return "Whole Numbers"
	case CategoryFractions:
		return "Fractions"
	case CategoryDecimals:
		return "Decimals"
	case CategoryPercentages:
		return "Percentages"
	case CategoryRatios:
		return "Ratios & Proportions"
	case CategoryGeometry:
		return "Geometry"
	case CategoryAlgebra:
		return "Algebra"
	case CategoryData:
		return "Data & Statistics"
	case CategoryWordProblems:
		return "Word Problems"
	default:
		return string(c)
	}
}

// KnowledgePoint is one of the three ordered sub-skills within a topic.
type KnowledgePoint struct {
	ID          string
	TopicID     string
	Level       int // 1, 2 or 3
	Title       string
	Description string
}

// Edge is a weighted prerequisite link from an advanced topic to one of
// its prerequisites. Weight is the fraction of the prerequisite that
// practicing the advanced topic implicitly exercises, in (0, 1].
type Edge struct {
	TopicID string
	Weight  float64
}

// Topic is a single node in the knowledge graph.
type Topic struct {
	ID              string
	Name            string
	Description     string
	Category        Category
	Emoji           string
	KnowledgePoints [3]KnowledgePoint
	Prerequisites   []Edge
}

// KnowledgePointByID returns the topic's knowledge point with the given id.
func (t Topic) KnowledgePointByID(id string) (KnowledgePoint, bool) {
	for _, kp := range t.KnowledgePoints {
		if kp.ID == id {
			return kp, true
		}
	}
	return KnowledgePoint{}, false
}
