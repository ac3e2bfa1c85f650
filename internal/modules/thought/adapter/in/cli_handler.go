package in

import (
	"context"

	"focal/internal/modules/thought/dto"
	thoughtin "focal/internal/modules/thought/port/in"
)

type CLIHandler struct {
	usecase thoughtin.Usecase
}

func NewCLIHandler(usecase thoughtin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, text, goalID string) (dto.ThoughtOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Text: text, GoalID: goalID})
}

func (h CLIHandler) List(ctx context.Context, goalID string, limit int, oldestFirst bool) ([]dto.ThoughtOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{GoalID: goalID, Limit: limit, OldestFirst: oldestFirst})
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}
