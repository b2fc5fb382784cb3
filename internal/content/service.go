package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/llm"
	"github.com/mathpath/mathpath/internal/student"
)

const (
	problemMaxTokens       = 2048
	workedExampleMaxTokens = 1024
	generationTemperature  = 0.7
)

// Cache persists generated content across sessions. Problems accumulate
// per knowledge point; a worked example replaces the previous one.
type Cache interface {
	Problems(ctx context.Context, kpID string) ([]Problem, error)
	AppendProblems(ctx context.Context, problems []Problem) error
	WorkedExample(ctx context.Context, kpID string) (*WorkedExample, error)
	SaveWorkedExample(ctx context.Context, ex *WorkedExample) error
}

// Service serves problems and worked examples, consulting the cache
// before calling the LLM provider. Cache failures degrade to generation;
// generation failures surface to the caller.
type Service struct {
	provider llm.Provider
	cache    Cache
	logger   *slog.Logger
	rng      *rand.Rand
}

// NewService creates a content service.
func NewService(provider llm.Provider, cache Cache, logger *slog.Logger, rng *rand.Rand) *Service {
	return &Service{provider: provider, cache: cache, logger: logger, rng: rng}
}

// Problem returns one practice problem for the knowledge point: a random
// cached problem when any exist, otherwise a freshly generated batch is
// cached and one of it returned.
func (s *Service) Problem(ctx context.Context, topicID, kpID string) (*Problem, error) {
	cached, err := s.cache.Problems(ctx, kpID)
	if err != nil {
		s.logger.Warn("problem cache read failed, generating fresh", "knowledge_point", kpID, "error", err)
	}
	if len(cached) > 0 {
		return &cached[s.rng.IntN(len(cached))], nil
	}

	batch, err := s.GenerateProblems(ctx, topicID, kpID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.AppendProblems(ctx, batch); err != nil {
		s.logger.Warn("problem cache write failed", "knowledge_point", kpID, "error", err)
	}
	return &batch[s.rng.IntN(len(batch))], nil
}

// problemOutput is the raw LLM shape before validation.
type problemOutput struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Choices       []Choice `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hints         []string `json:"hints"`
	Explanation   string   `json:"explanation"`
}

type problemBatchOutput struct {
	Problems []problemOutput `json:"problems"`
}

// GenerateProblems calls the provider for a fresh batch. Problems that
// fail structural checks are dropped; an entirely unusable batch is an
// error.
func (s *Service) GenerateProblems(ctx context.Context, topicID, kpID string) ([]Problem, error) {
	topic, kp, err := lookup(topicID, kpID)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "practice-problems")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: problemSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProblemMessage(topic, kp)},
		},
		Schema:      ProblemBatchSchema,
		MaxTokens:   problemMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate problems for %s: %w", kpID, err)
	}

	var batch problemBatchOutput
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("parse problem batch for %s: %w", kpID, err)
	}

	xp := student.ProblemXPValue(kp.Level)
	var problems []Problem
	for _, raw := range batch.Problems {
		p, err := buildProblem(raw, topicID, kpID, xp)
		if err != nil {
			s.logger.Warn("dropping malformed problem", "knowledge_point", kpID, "error", err)
			continue
		}
		problems = append(problems, p)
	}
	if len(problems) == 0 {
		return nil, fmt.Errorf("no usable problems in batch for %s", kpID)
	}
	return problems, nil
}

// WorkedExample returns the walkthrough for a knowledge point, generating
// and caching one on first request.
func (s *Service) WorkedExample(ctx context.Context, topicID, kpID string) (*WorkedExample, error) {
	if cached, err := s.cache.WorkedExample(ctx, kpID); err == nil {
		return cached, nil
	}

	topic, kp, err := lookup(topicID, kpID)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "worked-example")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: workedExampleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildWorkedExampleMessage(topic, kp)},
		},
		Schema:      WorkedExampleSchema,
		MaxTokens:   workedExampleMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate worked example for %s: %w", kpID, err)
	}

	var out struct {
		Title       string              `json:"title"`
		Problem     string              `json:"problem"`
		Steps       []WorkedExampleStep `json:"steps"`
		FinalAnswer string              `json:"finalAnswer"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse worked example for %s: %w", kpID, err)
	}
	if out.Problem == "" || len(out.Steps) == 0 {
		return nil, fmt.Errorf("incomplete worked example for %s", kpID)
	}

	ex := &WorkedExample{
		ID:               uuid.NewString(),
		TopicID:          topicID,
		KnowledgePointID: kpID,
		Title:            out.Title,
		Problem:          out.Problem,
		Steps:            out.Steps,
		FinalAnswer:      out.FinalAnswer,
	}
	if err := s.cache.SaveWorkedExample(ctx, ex); err != nil {
		s.logger.Warn("worked example cache write failed", "knowledge_point", kpID, "error", err)
	}
	return ex, nil
}

func lookup(topicID, kpID string) (knowledge.Topic, knowledge.KnowledgePoint, error) {
	topic, err := knowledge.GetTopic(topicID)
	if err != nil {
		return knowledge.Topic{}, knowledge.KnowledgePoint{}, err
	}
	kp, ok := topic.KnowledgePointByID(kpID)
	if !ok {
		return knowledge.Topic{}, knowledge.KnowledgePoint{}, fmt.Errorf("unknown knowledge point %q in topic %q", kpID, topicID)
	}
	return topic, kp, nil
}

// buildProblem converts raw LLM output into a Problem, enforcing the
// structural rules the schema cannot express.
func buildProblem(raw problemOutput, topicID, kpID string, xp int) (Problem, error) {
	if raw.Question == "" {
		return Problem{}, fmt.Errorf("empty question")
	}
	if raw.CorrectAnswer == "" {
		return Problem{}, fmt.Errorf("empty correct answer")
	}
	if len(raw.Hints) != 3 {
		return Problem{}, fmt.Errorf("got %d hints, want 3", len(raw.Hints))
	}
	for i, h := range raw.Hints {
		if h == "" {
			return Problem{}, fmt.Errorf("hint %d is empty", i+1)
		}
	}

	ptype := ProblemType(raw.Type)
	switch ptype {
	case MultipleChoice:
		if len(raw.Choices) != 4 {
			return Problem{}, fmt.Errorf("got %d choices, want 4", len(raw.Choices))
		}
		correct := 0
		for _, c := range raw.Choices {
			if c.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return Problem{}, fmt.Errorf("got %d correct choices, want exactly 1", correct)
		}
	case FillInBlank, TrueFalse:
		raw.Choices = nil
	default:
		return Problem{}, fmt.Errorf("unknown problem type %q", raw.Type)
	}

	return Problem{
		ID:               uuid.NewString(),
		TopicID:          topicID,
		KnowledgePointID: kpID,
		Type:             ptype,
		Question:         raw.Question,
		Choices:          raw.Choices,
		CorrectAnswer:    raw.CorrectAnswer,
		Hints:            [3]string{raw.Hints[0], raw.Hints[1], raw.Hints[2]},
		Explanation:      raw.Explanation,
		XPValue:          xp,
	}, nil
}
