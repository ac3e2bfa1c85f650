package usecase

import (
	"context"

	goaldto "focal/internal/modules/goal/dto"
	goalin "focal/internal/modules/goal/port/in"
	pomodoroin "focal/internal/modules/pomodoro/port/in"
	"focal/internal/modules/stats/domain"
	"focal/internal/modules/stats/dto"
	statsin "focal/internal/modules/stats/port/in"
	"focal/internal/platform/clock"
)

// Interactor is a read-side consumer of the goal and pomodoro modules; it
// never writes anything.
type Interactor struct {
	clock    clock.Clock
	goals    goalin.Usecase
	sessions pomodoroin.Usecase
}

func NewInteractor(clk clock.Clock, goals goalin.Usecase, sessions pomodoroin.Usecase) statsin.Usecase {
	return &Interactor{clock: clk, goals: goals, sessions: sessions}
}

func (i *Interactor) Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error) {
	records, err := i.loadRecords(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	parents, err := i.loadParents(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		TotalsByGoal:      domain.TotalByGoal(records, parents, input.From, input.To),
		CurrentStreak:     domain.CurrentStreak(records, i.clock.Now()),
		LongestStreak:     domain.LongestStreak(records),
		AveragePerDaySec:  domain.AverageFocusPerDay(records, input.From, input.To),
		MostProductiveDay: domain.MostProductiveWeekday(records),
	}, nil
}

func (i *Interactor) Histogram(ctx context.Context, input dto.HistogramInput) (dto.HistogramOutput, error) {
	records, err := i.loadRecords(ctx)
	if err != nil {
		return dto.HistogramOutput{}, err
	}
	days := input.Days
	if days < 1 {
		days = 7
	}
	end := input.Start.AddDate(0, 0, days-1)
	return dto.HistogramOutput{SecondsByDay: domain.DateHistogram(records, input.Start, end)}, nil
}

func (i *Interactor) loadRecords(ctx context.Context) ([]domain.FocusRecord, error) {
	sessions, err := i.sessions.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.FocusRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, domain.FocusRecord{GoalID: s.GoalID, Start: s.Start, Seconds: s.DurationSec})
	}
	return records, nil
}

func (i *Interactor) loadParents(ctx context.Context) (map[string]string, error) {
	goals, err := i.goals.List(ctx, goaldto.ListInput{IncludeArchived: true})
	if err != nil {
		return nil, err
	}
	parents := map[string]string{}
	for _, g := range goals {
		if g.ParentID != "" {
			parents[g.ID] = g.ParentID
		}
	}
	return parents, nil
}
