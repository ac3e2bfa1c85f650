package in

import (
	"context"
	"time"

	"focal/internal/modules/goal/dto"
	goalin "focal/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, priority string, tags []string, parentID string, deadline *time.Time) (dto.GoalOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Title: title, Priority: priority, Tags: tags, ParentID: parentID, Deadline: deadline})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Update(ctx context.Context, id string, title, priority *string, deadline *time.Time) (dto.GoalOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{ID: id, Title: title, Priority: priority, Deadline: deadline})
}

func (h CLIHandler) Archive(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Archive(ctx, id)
}

func (h CLIHandler) Restore(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Restore(ctx, id)
}

func (h CLIHandler) Complete(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Complete(ctx, id)
}

func (h CLIHandler) Reopen(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Reopen(ctx, id)
}

func (h CLIHandler) AddTags(ctx context.Context, id string, tags []string) (dto.GoalOutput, error) {
	return h.usecase.AddTags(ctx, id, tags)
}

func (h CLIHandler) RemoveTag(ctx context.Context, id, tag string) (dto.GoalOutput, error) {
	return h.usecase.RemoveTag(ctx, id, tag)
}

func (h CLIHandler) List(ctx context.Context, input dto.ListInput) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx, input)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) TagCensus(ctx context.Context) (map[string]int, error) {
	return h.usecase.TagCensus(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
