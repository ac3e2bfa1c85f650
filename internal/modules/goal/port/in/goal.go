package in

import (
	"context"

	"focal/internal/modules/goal/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error)
	Get(ctx context.Context, id string) (dto.GoalOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.GoalOutput, error)
	Archive(ctx context.Context, id string) (dto.GoalOutput, error)
	Restore(ctx context.Context, id string) (dto.GoalOutput, error)
	Complete(ctx context.Context, id string) (dto.GoalOutput, error)
	Reopen(ctx context.Context, id string) (dto.GoalOutput, error)
	AddTags(ctx context.Context, id string, tags []string) (dto.GoalOutput, error)
	RemoveTag(ctx context.Context, id, tag string) (dto.GoalOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.GoalOutput, error)
	Remove(ctx context.Context, id string) error
	TagCensus(ctx context.Context) (map[string]int, error)
	FindByTitle(ctx context.Context, title string) (dto.GoalOutput, error)
	Reindex(ctx context.Context) error
}
