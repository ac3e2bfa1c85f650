package out

import (
	"context"

	"focal/internal/modules/goal/domain"
)

type GoalStore interface {
	Add(ctx context.Context, goal domain.Goal) error
	Get(ctx context.Context, id string) (domain.Goal, error)
	// Update replaces the full row; it never upserts.
	Update(ctx context.Context, goal domain.Goal) error
	// Mutate runs one read-transform-write cycle for a single goal under the
	// store lock.
	Mutate(ctx context.Context, id string, fn func(domain.Goal) (domain.Goal, error)) (domain.Goal, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Goal, error)
	FindByTitle(ctx context.Context, title string) (domain.Goal, error)
}

type GoalIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, id string) error
}
