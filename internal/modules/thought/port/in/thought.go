package in

import (
	"context"

	"focal/internal/modules/thought/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.ThoughtOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.ThoughtOutput, error)
	Remove(ctx context.Context, id string) error
}
