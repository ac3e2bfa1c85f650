package in

import (
	"context"

	"focal/internal/modules/pomodoro/dto"
	pomodoroin "focal/internal/modules/pomodoro/port/in"
)

type CLIHandler struct {
	usecase pomodoroin.Usecase
}

func NewCLIHandler(usecase pomodoroin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, durationMin int, goalID string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{DurationMin: durationMin, GoalID: goalID})
}

func (h CLIHandler) Pause(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
