package usecase

import (
	"context"
	"fmt"
	"time"

	goalin "focal/internal/modules/goal/port/in"
	"focal/internal/modules/pomodoro/domain"
	"focal/internal/modules/pomodoro/dto"
	pomodoroin "focal/internal/modules/pomodoro/port/in"
	pomodoroout "focal/internal/modules/pomodoro/port/out"
	"focal/internal/modules/pomodoro/service"
	"focal/internal/platform/clock"
)

type Interactor struct {
	svc       *service.PomodoroService
	clock     clock.Clock
	goals     goalin.Usecase
	state     pomodoroout.ActiveStateStore
	history   pomodoroout.HistoryStore
	projector pomodoroout.SessionIndexProjector
	hooks     pomodoroout.Hooks
}

func NewInteractor(
	svc *service.PomodoroService,
	clk clock.Clock,
	goals goalin.Usecase,
	state pomodoroout.ActiveStateStore,
	history pomodoroout.HistoryStore,
	projector pomodoroout.SessionIndexProjector,
	hooks pomodoroout.Hooks,
) pomodoroin.Usecase {
	return &Interactor{svc: svc, clock: clk, goals: goals, state: state, history: history, projector: projector, hooks: hooks}
}

// Start writes a fresh running state. An existing active session is replaced
// without error; collaborators that want stricter behavior check Status
// first.
func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	var goalID *string
	if input.GoalID != "" {
		if i.goals != nil {
			if _, err := i.goals.Get(ctx, input.GoalID); err != nil {
				return dto.StartOutput{}, fmt.Errorf("start session: %w", err)
			}
		}
		goalID = &input.GoalID
	}
	active := i.svc.Begin(input.DurationMin, goalID)
	if err := i.state.Save(ctx, active); err != nil {
		return dto.StartOutput{}, err
	}
	i.hooks.SessionStarted(ctx)
	return dto.StartOutput{
		GoalID:      input.GoalID,
		Start:       active.Start,
		DurationSec: active.DurationSec,
	}, nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.StateOutput, error) {
	now := i.clock.Now()
	active, err := i.state.Mutate(ctx, func(s domain.ActiveSession) (domain.ActiveSession, error) {
		return s.Pause(now)
	})
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toStateOutput(active, now), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.StateOutput, error) {
	now := i.clock.Now()
	active, err := i.state.Mutate(ctx, func(s domain.ActiveSession) (domain.ActiveSession, error) {
		return s.Resume(now)
	})
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toStateOutput(active, now), nil
}

// Stop removes the state file, appends the historical record and fires the
// session-ended hook. A failed history append puts the taken state back so
// the session is not lost; a failed projector insert is not fatal to the
// data, since reindex rebuilds the index from history.
func (i *Interactor) Stop(ctx context.Context) (dto.SessionOutput, error) {
	taken, err := i.state.Take(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session := i.svc.Record(taken.Finish(i.clock.Now()))
	if err := i.history.Append(ctx, session); err != nil {
		if saveErr := i.state.Save(ctx, taken); saveErr != nil {
			return dto.SessionOutput{}, fmt.Errorf("record session: %w (restore timer state: %v)", err, saveErr)
		}
		return dto.SessionOutput{}, err
	}
	if err := i.projector.InsertSession(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	i.hooks.SessionEnded(ctx)
	return toSessionOutput(session), nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StateOutput, error) {
	active, err := i.state.Load(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toStateOutput(active, i.clock.Now()), nil
}

func (i *Interactor) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.history.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionOutput(session))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	sessions, err := i.history.List(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, session := range sessions {
		if err := i.projector.InsertSession(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

func toStateOutput(active domain.ActiveSession, now time.Time) dto.StateOutput {
	out := dto.StateOutput{
		Start:        active.Start,
		DurationSec:  active.DurationSec,
		ElapsedSec:   active.LiveElapsedSec(now),
		RemainingSec: active.RemainingSec(now),
		Paused:       active.Paused,
	}
	if active.GoalID != nil {
		out.GoalID = *active.GoalID
	}
	return out
}

func toSessionOutput(session domain.Session) dto.SessionOutput {
	out := dto.SessionOutput{
		ID:          session.ID,
		Start:       session.Start,
		DurationSec: session.DurationSec,
	}
	if session.GoalID != nil {
		out.GoalID = *session.GoalID
	}
	return out
}
