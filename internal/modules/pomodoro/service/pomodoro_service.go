package service

import (
	"focal/internal/modules/pomodoro/domain"
	"focal/internal/platform/clock"
	"focal/internal/platform/id"
)

type PomodoroService struct {
	clock              clock.Clock
	idGen              id.Generator
	defaultDurationMin int
}

func NewPomodoroService(clock clock.Clock, idGen id.Generator, defaultDurationMin int) *PomodoroService {
	return &PomodoroService{clock: clock, idGen: idGen, defaultDurationMin: defaultDurationMin}
}

// Begin builds a fresh running state. A zero duration falls back to the
// configured default.
func (s *PomodoroService) Begin(durationMin int, goalID *string) domain.ActiveSession {
	if durationMin <= 0 {
		durationMin = s.defaultDurationMin
	}
	return domain.NewActiveSession(goalID, s.clock.Now(), durationMin*60)
}

// Record turns a finished timer into its historical record. The record keeps
// the original start and the nominal target duration, never the accumulated
// elapsed time.
func (s *PomodoroService) Record(active domain.ActiveSession) domain.Session {
	return domain.Session{
		ID:          s.idGen.New(),
		GoalID:      active.GoalID,
		Start:       active.Start,
		DurationSec: active.DurationSec,
	}
}
