package service

import (
	"context"
	"sort"
	"strings"

	"focal/internal/modules/thought/domain"
	thoughtout "focal/internal/modules/thought/port/out"
	"focal/internal/platform/clock"
	"focal/internal/platform/id"
)

type ThoughtService struct {
	clock clock.Clock
	idGen id.Generator
	store thoughtout.ThoughtStore
}

func NewThoughtService(clock clock.Clock, idGen id.Generator, store thoughtout.ThoughtStore) *ThoughtService {
	return &ThoughtService{clock: clock, idGen: idGen, store: store}
}

func (s *ThoughtService) Add(ctx context.Context, text string, goalID *string) (domain.Thought, error) {
	thought := domain.Thought{
		ID:        s.idGen.New(),
		Text:      strings.TrimSpace(text),
		Timestamp: s.clock.Now(),
		GoalID:    goalID,
	}
	if err := thought.Validate(); err != nil {
		return domain.Thought{}, err
	}
	if err := s.store.Append(ctx, thought); err != nil {
		return domain.Thought{}, err
	}
	return thought, nil
}

// List filters by goal, sorts chronologically and applies the limit after
// sorting.
func (s *ThoughtService) List(ctx context.Context, goalID *string, limit int, oldestFirst bool) ([]domain.Thought, error) {
	thoughts, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Thought, 0, len(thoughts))
	for _, t := range thoughts {
		if goalID != nil && (t.GoalID == nil || *t.GoalID != *goalID) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if oldestFirst {
			return out[a].Timestamp.Before(out[b].Timestamp)
		}
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ThoughtService) Remove(ctx context.Context, thoughtID string) error {
	return s.store.Remove(ctx, thoughtID)
}
