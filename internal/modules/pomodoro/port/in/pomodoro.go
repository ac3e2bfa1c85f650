package in

import (
	"context"

	"focal/internal/modules/pomodoro/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Pause(ctx context.Context) (dto.StateOutput, error)
	Resume(ctx context.Context) (dto.StateOutput, error)
	Stop(ctx context.Context) (dto.SessionOutput, error)
	Status(ctx context.Context) (dto.StateOutput, error)
	ListSessions(ctx context.Context) ([]dto.SessionOutput, error)
	Reindex(ctx context.Context) error
}
