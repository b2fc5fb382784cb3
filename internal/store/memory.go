package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mathpath/mathpath/internal/content"
	"github.com/mathpath/mathpath/internal/session"
	"github.com/mathpath/mathpath/internal/student"
)

// Memory is an in-memory implementation of every repository. It backs
// tests and the degraded mode entered when the database is unusable.
// Documents round-trip through JSON so stored values are detached from
// caller-held pointers, same as the SQLite store.
type Memory struct {
	mu       sync.Mutex
	state    []byte
	sessions [][]byte
	problems map[string][][]byte
	examples map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		problems: make(map[string][][]byte),
		examples: make(map[string][]byte),
	}
}

func (m *Memory) LoadState(ctx context.Context) (*student.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, ErrNotFound
	}
	var st student.State
	if err := json.Unmarshal(m.state, &st); err != nil {
		return nil, err
	}
	st.EnsureTopics()
	return &st, nil
}

func (m *Memory) SaveState(ctx context.Context, st *student.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = data
	return nil
}

func (m *Memory) ResetState(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}

func (m *Memory) AppendSession(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *Memory) ListSessions(ctx context.Context) ([]*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := make([]*session.Session, 0, len(m.sessions))
	for _, data := range m.sessions {
		var sess session.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			return nil, err
		}
		sessions = append(sessions, &sess)
	}
	return sessions, nil
}

func (m *Memory) Problems(ctx context.Context, kpID string) ([]content.Problem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var problems []content.Problem
	for _, data := range m.problems[kpID] {
		var p content.Problem
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

func (m *Memory) AppendProblems(ctx context.Context, problems []content.Problem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range problems {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		m.problems[p.KnowledgePointID] = append(m.problems[p.KnowledgePointID], data)
	}
	return nil
}

func (m *Memory) WorkedExample(ctx context.Context, kpID string) (*content.WorkedExample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.examples[kpID]
	if !ok {
		return nil, ErrNotFound
	}
	var ex content.WorkedExample
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (m *Memory) SaveWorkedExample(ctx context.Context, ex *content.WorkedExample) error {
	data, err := json.Marshal(ex)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.examples[ex.KnowledgePointID] = data
	return nil
}
