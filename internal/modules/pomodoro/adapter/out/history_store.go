package out

import (
	"context"
	"fmt"
	"time"

	"focal/internal/modules/pomodoro/domain"
	pomodoroout "focal/internal/modules/pomodoro/port/out"
	"focal/internal/platform/docdb"
)

const sessionsTable = "sessions"

// DocumentHistoryStore appends completed sessions to the sessions table of
// the shared document database.
type DocumentHistoryStore struct {
	db *docdb.Store
}

func NewDocumentHistoryStore(db *docdb.Store) pomodoroout.HistoryStore {
	return &DocumentHistoryStore{db: db}
}

func (s *DocumentHistoryStore) Append(_ context.Context, session domain.Session) error {
	return s.db.Update(func(db *docdb.Database) error {
		row := docdb.Row{
			"id":           session.ID,
			"goal_id":      nil,
			"start":        session.Start.Format(time.RFC3339),
			"duration_sec": session.DurationSec,
		}
		if session.GoalID != nil {
			row["goal_id"] = *session.GoalID
		}
		db.Append(sessionsTable, row)
		return nil
	})
}

func (s *DocumentHistoryStore) List(_ context.Context) ([]domain.Session, error) {
	var out []domain.Session
	err := s.db.View(func(db *docdb.Database) error {
		rows := db.Table(sessionsTable)
		out = make([]domain.Session, 0, len(rows))
		for _, row := range rows {
			session, err := rowToSession(row)
			if err != nil {
				return err
			}
			out = append(out, session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func rowToSession(row docdb.Row) (domain.Session, error) {
	session := domain.Session{
		ID:     asString(row["id"]),
		GoalID: asOptString(row["goal_id"]),
	}
	start, err := asTime(row["start"])
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %s start: %w", session.ID, err)
	}
	session.Start = start
	session.DurationSec = asInt(row["duration_sec"])
	return session, nil
}
