package usecase

import (
	"context"

	"focal/internal/modules/thought/domain"
	"focal/internal/modules/thought/dto"
	thoughtin "focal/internal/modules/thought/port/in"
	"focal/internal/modules/thought/service"
)

type Interactor struct {
	svc *service.ThoughtService
}

func NewInteractor(svc *service.ThoughtService) thoughtin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.ThoughtOutput, error) {
	var goalID *string
	if input.GoalID != "" {
		goalID = &input.GoalID
	}
	thought, err := i.svc.Add(ctx, input.Text, goalID)
	if err != nil {
		return dto.ThoughtOutput{}, err
	}
	return toOutput(thought), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.ThoughtOutput, error) {
	var goalID *string
	if input.GoalID != "" {
		goalID = &input.GoalID
	}
	thoughts, err := i.svc.List(ctx, goalID, input.Limit, input.OldestFirst)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThoughtOutput, 0, len(thoughts))
	for _, t := range thoughts {
		out = append(out, toOutput(t))
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func toOutput(thought domain.Thought) dto.ThoughtOutput {
	out := dto.ThoughtOutput{
		ID:        thought.ID,
		Text:      thought.Text,
		Timestamp: thought.Timestamp,
	}
	if thought.GoalID != nil {
		out.GoalID = *thought.GoalID
	}
	return out
}
