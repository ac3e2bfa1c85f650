package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"focal/internal/modules/goal/domain"
	goalout "focal/internal/modules/goal/port/out"
	"focal/internal/platform/clock"
	apperrors "focal/internal/platform/errors"
	"focal/internal/platform/id"
)

type GoalService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     goalout.GoalStore
	projector goalout.GoalIndexProjector
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalout.GoalStore, projector goalout.GoalIndexProjector) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store, projector: projector}
}

func (s *GoalService) Add(ctx context.Context, title string, priority domain.Priority, tags []string, parentID *string, deadline *time.Time) (domain.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Goal{}, fmt.Errorf("goal title is required: %w", apperrors.ErrInvalidInput)
	}
	normalized, err := domain.NormalizeTags(tags)
	if err != nil {
		return domain.Goal{}, err
	}
	if parentID != nil {
		if _, err := s.store.Get(ctx, *parentID); err != nil {
			return domain.Goal{}, fmt.Errorf("parent goal %s: %w", *parentID, err)
		}
	}
	goal := domain.Goal{
		ID:       s.idGen.New(),
		Title:    title,
		Created:  s.clock.Now(),
		Priority: priority,
		Tags:     normalized,
		ParentID: parentID,
		Deadline: deadline,
	}
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, err
	}
	if err := s.store.Add(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Get(ctx context.Context, goalID string) (domain.Goal, error) {
	return s.store.Get(ctx, goalID)
}

func (s *GoalService) FindByTitle(ctx context.Context, title string) (domain.Goal, error) {
	return s.store.FindByTitle(ctx, title)
}

// Update replaces title, priority and deadline; nil inputs keep the current
// value. Archived, completed, tags and parent are untouched.
func (s *GoalService) Update(ctx context.Context, goalID string, title *string, priority *domain.Priority, deadline *time.Time) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		if title != nil {
			trimmed := strings.TrimSpace(*title)
			if trimmed == "" {
				return domain.Goal{}, fmt.Errorf("goal title is required: %w", apperrors.ErrInvalidInput)
			}
			g.Title = trimmed
		}
		if priority != nil {
			if err := priority.Validate(); err != nil {
				return domain.Goal{}, err
			}
			g.Priority = *priority
		}
		if deadline != nil {
			g.Deadline = deadline
		}
		return g, nil
	})
}

// Archive and Restore are strict toggles: repeating either in the same state
// is an error, unlike Complete and Reopen.
func (s *GoalService) Archive(ctx context.Context, goalID string) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		if g.Archived {
			return domain.Goal{}, fmt.Errorf("goal %s already archived: %w", goalID, apperrors.ErrInvalidState)
		}
		g.Archived = true
		return g, nil
	})
}

func (s *GoalService) Restore(ctx context.Context, goalID string) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		if !g.Archived {
			return domain.Goal{}, fmt.Errorf("goal %s is not archived: %w", goalID, apperrors.ErrInvalidState)
		}
		g.Archived = false
		return g, nil
	})
}

// Complete and Reopen are idempotent: repeating them returns the goal
// unchanged with no error.
func (s *GoalService) Complete(ctx context.Context, goalID string) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		g.Completed = true
		return g, nil
	})
}

func (s *GoalService) Reopen(ctx context.Context, goalID string) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		g.Completed = false
		return g, nil
	})
}

func (s *GoalService) AddTags(ctx context.Context, goalID string, tags []string) (domain.Goal, error) {
	normalized, err := domain.NormalizeTags(tags)
	if err != nil {
		return domain.Goal{}, err
	}
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		return g.WithTags(normalized), nil
	})
}

func (s *GoalService) RemoveTag(ctx context.Context, goalID, tag string) (domain.Goal, error) {
	return s.mutate(ctx, goalID, func(g domain.Goal) (domain.Goal, error) {
		return g.WithoutTag(tag), nil
	})
}

// Remove hard-deletes the goal. Children referencing it keep their dangling
// parent id; past sessions keep their goal id.
func (s *GoalService) Remove(ctx context.Context, goalID string) error {
	if err := s.store.Remove(ctx, goalID); err != nil {
		return err
	}
	return s.projector.DeleteGoal(ctx, goalID)
}

func (s *GoalService) List(ctx context.Context, filter domain.Filter) ([]domain.Goal, error) {
	goals, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		if filter.Matches(g, now) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *GoalService) TagCensus(ctx context.Context) (map[string]int, error) {
	goals, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	census := map[string]int{}
	for _, g := range goals {
		for _, tag := range g.Tags {
			census[tag]++
		}
	}
	return census, nil
}

func (s *GoalService) Reindex(ctx context.Context) error {
	goals, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for _, g := range goals {
		if err := s.projector.UpsertGoal(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (s *GoalService) mutate(ctx context.Context, goalID string, fn func(domain.Goal) (domain.Goal, error)) (domain.Goal, error) {
	goal, err := s.store.Mutate(ctx, goalID, fn)
	if err != nil {
		return domain.Goal{}, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}
