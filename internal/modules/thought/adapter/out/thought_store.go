package out

import (
	"context"
	"fmt"
	"time"

	"focal/internal/modules/thought/domain"
	thoughtout "focal/internal/modules/thought/port/out"
	"focal/internal/platform/docdb"
	apperrors "focal/internal/platform/errors"
)

const thoughtsTable = "thoughts"

type DocumentThoughtStore struct {
	db *docdb.Store
}

func NewDocumentThoughtStore(db *docdb.Store) thoughtout.ThoughtStore {
	return &DocumentThoughtStore{db: db}
}

func (s *DocumentThoughtStore) Append(_ context.Context, thought domain.Thought) error {
	return s.db.Update(func(db *docdb.Database) error {
		row := docdb.Row{
			"id":        thought.ID,
			"text":      thought.Text,
			"timestamp": thought.Timestamp.Format(time.RFC3339),
			"goal_id":   nil,
		}
		if thought.GoalID != nil {
			row["goal_id"] = *thought.GoalID
		}
		db.Append(thoughtsTable, row)
		return nil
	})
}

func (s *DocumentThoughtStore) List(_ context.Context) ([]domain.Thought, error) {
	var out []domain.Thought
	err := s.db.View(func(db *docdb.Database) error {
		rows := db.Table(thoughtsTable)
		out = make([]domain.Thought, 0, len(rows))
		for _, row := range rows {
			thought, err := rowToThought(row)
			if err != nil {
				return err
			}
			out = append(out, thought)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DocumentThoughtStore) Remove(_ context.Context, id string) error {
	return s.db.Update(func(db *docdb.Database) error {
		rows := db.Table(thoughtsTable)
		for idx, row := range rows {
			if rowString(row, "id") == id {
				db.SetTable(thoughtsTable, append(rows[:idx], rows[idx+1:]...))
				return nil
			}
		}
		return fmt.Errorf("thought %s: %w", id, apperrors.ErrNotFound)
	})
}

func rowToThought(row docdb.Row) (domain.Thought, error) {
	thought := domain.Thought{
		ID:   rowString(row, "id"),
		Text: rowString(row, "text"),
	}
	rawTS := rowString(row, "timestamp")
	ts, err := time.Parse(time.RFC3339, rawTS)
	if err != nil {
		return domain.Thought{}, fmt.Errorf("thought %s timestamp %q: %w", thought.ID, rawTS, err)
	}
	thought.Timestamp = ts
	if v, ok := row["goal_id"]; ok && v != nil {
		goalID := rowString(row, "goal_id")
		thought.GoalID = &goalID
	}
	return thought, nil
}

func rowString(row docdb.Row, key string) string {
	v := row[key]
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
