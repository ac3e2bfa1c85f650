package usecase

import (
	"context"

	"focal/internal/modules/goal/domain"
	"focal/internal/modules/goal/dto"
	goalin "focal/internal/modules/goal/port/in"
	"focal/internal/modules/goal/service"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error) {
	priority, err := domain.ParsePriority(input.Priority)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	var parentID *string
	if input.ParentID != "" {
		parentID = &input.ParentID
	}
	goal, err := i.svc.Add(ctx, input.Title, priority, input.Tags, parentID, input.Deadline)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.GoalOutput, error) {
	var priority *domain.Priority
	if input.Priority != nil {
		parsed, err := domain.ParsePriority(*input.Priority)
		if err != nil {
			return dto.GoalOutput{}, err
		}
		priority = &parsed
	}
	goal, err := i.svc.Update(ctx, input.ID, input.Title, priority, input.Deadline)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Archive(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Archive(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Restore(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Restore(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Complete(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Complete(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Reopen(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Reopen(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) AddTags(ctx context.Context, id string, tags []string) (dto.GoalOutput, error) {
	goal, err := i.svc.AddTags(ctx, id, tags)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) RemoveTag(ctx context.Context, id, tag string) (dto.GoalOutput, error) {
	goal, err := i.svc.RemoveTag(ctx, id, tag)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.GoalOutput, error) {
	filter := domain.Filter{
		IncludeArchived: input.IncludeArchived,
		OnlyArchived:    input.OnlyArchived,
		Priority:        domain.Priority(input.Priority),
		Tags:            input.Tags,
		DueSoon:         input.DueSoon,
		Overdue:         input.Overdue,
	}
	if input.ParentID != "" {
		filter.ParentID = &input.ParentID
	}
	goals, err := i.svc.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, toOutput(g))
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) TagCensus(ctx context.Context) (map[string]int, error) {
	return i.svc.TagCensus(ctx)
}

func (i *Interactor) FindByTitle(ctx context.Context, title string) (dto.GoalOutput, error) {
	goal, err := i.svc.FindByTitle(ctx, title)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toOutput(goal domain.Goal) dto.GoalOutput {
	out := dto.GoalOutput{
		ID:        goal.ID,
		Title:     goal.Title,
		Created:   goal.Created,
		Priority:  string(goal.Priority),
		Archived:  goal.Archived,
		Completed: goal.Completed,
		Tags:      goal.Tags,
		Deadline:  goal.Deadline,
	}
	if goal.ParentID != nil {
		out.ParentID = *goal.ParentID
	}
	return out
}
