package out

import (
	"context"
	"fmt"
	"time"

	"focal/internal/modules/goal/domain"
	goalout "focal/internal/modules/goal/port/out"
	"focal/internal/platform/docdb"
	apperrors "focal/internal/platform/errors"
)

const goalsTable = "goals"

type DocumentGoalStore struct {
	db *docdb.Store
}

// NewDocumentGoalStore opens the goals table and migrates legacy rows: any
// row missing tags, parent_id, deadline or completed gets the field written
// back with its default. Fields already present are never touched, so the
// migration is idempotent.
func NewDocumentGoalStore(db *docdb.Store) (goalout.GoalStore, error) {
	store := &DocumentGoalStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *DocumentGoalStore) migrate() error {
	return s.db.Update(func(db *docdb.Database) error {
		for _, row := range db.Table(goalsTable) {
			if _, ok := row["tags"]; !ok {
				row["tags"] = []any{}
			}
			if _, ok := row["parent_id"]; !ok {
				row["parent_id"] = nil
			}
			if _, ok := row["deadline"]; !ok {
				row["deadline"] = nil
			}
			if _, ok := row["completed"]; !ok {
				row["completed"] = false
			}
		}
		return nil
	})
}

func (s *DocumentGoalStore) Add(_ context.Context, goal domain.Goal) error {
	return s.db.Update(func(db *docdb.Database) error {
		db.Append(goalsTable, goalToRow(goal))
		return nil
	})
}

func (s *DocumentGoalStore) Get(_ context.Context, id string) (domain.Goal, error) {
	var goal domain.Goal
	err := s.db.View(func(db *docdb.Database) error {
		row, _, ok := findRow(db, id)
		if !ok {
			return fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
		}
		var convErr error
		goal, convErr = rowToGoal(row)
		return convErr
	})
	if err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *DocumentGoalStore) Update(_ context.Context, goal domain.Goal) error {
	return s.db.Update(func(db *docdb.Database) error {
		rows := db.Table(goalsTable)
		_, idx, ok := findRow(db, goal.ID)
		if !ok {
			return fmt.Errorf("goal %s: %w", goal.ID, apperrors.ErrNotFound)
		}
		rows[idx] = goalToRow(goal)
		return nil
	})
}

func (s *DocumentGoalStore) Mutate(_ context.Context, id string, fn func(domain.Goal) (domain.Goal, error)) (domain.Goal, error) {
	var out domain.Goal
	err := s.db.Update(func(db *docdb.Database) error {
		rows := db.Table(goalsTable)
		row, idx, ok := findRow(db, id)
		if !ok {
			return fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
		}
		goal, err := rowToGoal(row)
		if err != nil {
			return err
		}
		updated, err := fn(goal)
		if err != nil {
			return err
		}
		rows[idx] = goalToRow(updated)
		out = updated
		return nil
	})
	if err != nil {
		return domain.Goal{}, err
	}
	return out, nil
}

func (s *DocumentGoalStore) Remove(_ context.Context, id string) error {
	return s.db.Update(func(db *docdb.Database) error {
		rows := db.Table(goalsTable)
		_, idx, ok := findRow(db, id)
		if !ok {
			return fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
		}
		db.SetTable(goalsTable, append(rows[:idx], rows[idx+1:]...))
		return nil
	})
}

func (s *DocumentGoalStore) List(_ context.Context) ([]domain.Goal, error) {
	var out []domain.Goal
	err := s.db.View(func(db *docdb.Database) error {
		rows := db.Table(goalsTable)
		out = make([]domain.Goal, 0, len(rows))
		for _, row := range rows {
			goal, err := rowToGoal(row)
			if err != nil {
				return err
			}
			out = append(out, goal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DocumentGoalStore) FindByTitle(ctx context.Context, title string) (domain.Goal, error) {
	goals, err := s.List(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for _, g := range goals {
		if g.Title == title {
			return g, nil
		}
	}
	return domain.Goal{}, fmt.Errorf("goal titled %q: %w", title, apperrors.ErrNotFound)
}

func findRow(db *docdb.Database, id string) (docdb.Row, int, bool) {
	for idx, row := range db.Table(goalsTable) {
		if asString(row["id"]) == id {
			return row, idx, true
		}
	}
	return nil, 0, false
}

func goalToRow(goal domain.Goal) docdb.Row {
	tags := make([]any, 0, len(goal.Tags))
	for _, tag := range goal.Tags {
		tags = append(tags, tag)
	}
	row := docdb.Row{
		"id":        goal.ID,
		"title":     goal.Title,
		"created":   goal.Created.Format(time.RFC3339),
		"priority":  string(goal.Priority),
		"archived":  goal.Archived,
		"completed": goal.Completed,
		"tags":      tags,
		"parent_id": nil,
		"deadline":  nil,
	}
	if goal.ParentID != nil {
		row["parent_id"] = *goal.ParentID
	}
	if goal.Deadline != nil {
		row["deadline"] = goal.Deadline.Format(time.RFC3339)
	}
	return row
}

func rowToGoal(row docdb.Row) (domain.Goal, error) {
	created, err := asTime(row["created"])
	if err != nil {
		return domain.Goal{}, fmt.Errorf("goal %s created: %w", asString(row["id"]), err)
	}
	goal := domain.Goal{
		ID:        asString(row["id"]),
		Title:     asString(row["title"]),
		Created:   created,
		Priority:  domain.Priority(asStringDefault(row["priority"], string(domain.PriorityMedium))),
		Archived:  asBool(row["archived"]),
		Completed: asBool(row["completed"]),
		Tags:      asStringSlice(row["tags"]),
		ParentID:  asOptString(row["parent_id"]),
	}
	if deadline, ok, err := asOptTime(row["deadline"]); err != nil {
		return domain.Goal{}, fmt.Errorf("goal %s deadline: %w", goal.ID, err)
	} else if ok {
		goal.Deadline = &deadline
	}
	return goal, nil
}
