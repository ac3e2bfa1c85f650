package out

import (
	"context"

	"focal/internal/modules/thought/domain"
)

type ThoughtStore interface {
	Append(ctx context.Context, thought domain.Thought) error
	List(ctx context.Context) ([]domain.Thought, error)
	Remove(ctx context.Context, id string) error
}
