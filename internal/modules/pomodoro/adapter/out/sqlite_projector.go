package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focal/internal/modules/pomodoro/domain"
	pomodoroout "focal/internal/modules/pomodoro/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSessionProjector mirrors the append-only session history into the
// shared index database for external report tooling.
type SQLiteSessionProjector struct {
	db *sql.DB
}

func NewSQLiteSessionProjector(dbPath string) (pomodoroout.SessionIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite index: %w", err)
	}
	projector := &SQLiteSessionProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteSessionProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  goal_id TEXT,
  start TEXT NOT NULL,
  duration_sec INTEGER NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions index table: %w", err)
	}
	return nil
}

func (p *SQLiteSessionProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions index: %w", err)
	}
	return nil
}

func (p *SQLiteSessionProjector) InsertSession(ctx context.Context, session domain.Session) error {
	var goalID any
	if session.GoalID != nil {
		goalID = *session.GoalID
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, goal_id, start, duration_sec) VALUES (?, ?, ?, ?)`,
		session.ID,
		goalID,
		session.Start.Format(time.RFC3339),
		session.DurationSec,
	)
	if err != nil {
		return fmt.Errorf("insert session index row: %w", err)
	}
	return nil
}
