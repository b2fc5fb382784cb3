package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mathpath/mathpath/internal/session"
)

// SessionRepo is the append-only session history.
type SessionRepo interface {
	AppendSession(ctx context.Context, sess *session.Session) error
	ListSessions(ctx context.Context) ([]*session.Session, error)
}

// AppendSession stores a finished session. Sessions are immutable once
// written.
func (s *Store) AppendSession(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, date, data, created_at) VALUES (?, ?, ?, ?)`,
		sess.ID,
		sess.Date.Format("2006-01-02"),
		string(data),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// ListSessions returns all recorded sessions, oldest first.
func (s *Store) ListSessions(ctx context.Context) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM sessions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		var sess session.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}
