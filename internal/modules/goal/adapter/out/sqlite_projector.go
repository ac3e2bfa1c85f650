package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focal/internal/modules/goal/domain"
	goalout "focal/internal/modules/goal/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteGoalProjector maintains a read-side index of goals for external
// report tooling. The document database stays the source of truth; the index
// is rebuilt wholesale by Reindex.
type SQLiteGoalProjector struct {
	db *sql.DB
}

func NewSQLiteGoalProjector(dbPath string) (goalout.GoalIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite index: %w", err)
	}
	projector := &SQLiteGoalProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteGoalProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  priority TEXT NOT NULL,
  archived INTEGER NOT NULL,
  completed INTEGER NOT NULL,
  tags TEXT,
  parent_id TEXT,
  deadline TEXT,
  created TEXT NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goals index table: %w", err)
	}
	return nil
}

func (p *SQLiteGoalProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("reset goals index: %w", err)
	}
	return nil
}

func (p *SQLiteGoalProjector) UpsertGoal(ctx context.Context, goal domain.Goal) error {
	const stmt = `
INSERT INTO goals (id, title, priority, archived, completed, tags, parent_id, deadline, created)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  priority=excluded.priority,
  archived=excluded.archived,
  completed=excluded.completed,
  tags=excluded.tags,
  parent_id=excluded.parent_id,
  deadline=excluded.deadline,
  created=excluded.created;
`
	var parentID, deadline any
	if goal.ParentID != nil {
		parentID = *goal.ParentID
	}
	if goal.Deadline != nil {
		deadline = goal.Deadline.Format(time.RFC3339)
	}
	_, err := p.db.ExecContext(ctx, stmt,
		goal.ID,
		goal.Title,
		string(goal.Priority),
		boolToInt(goal.Archived),
		boolToInt(goal.Completed),
		strings.Join(goal.Tags, ","),
		parentID,
		deadline,
		goal.Created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert goal index row: %w", err)
	}
	return nil
}

func (p *SQLiteGoalProjector) DeleteGoal(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete goal index row: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
