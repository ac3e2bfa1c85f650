package domain

import (
	"fmt"
	"time"

	apperrors "focal/internal/platform/errors"
)

// ActiveSession is the single in-flight timer. It lives in exactly one of two
// sub-states: Running (Paused false, LastStart set) or Paused (Paused true,
// LastStart nil). ElapsedSec only ever grows; the pending running interval is
// folded in on pause and on stop, truncated to whole seconds.
type ActiveSession struct {
	GoalID      *string
	Start       time.Time
	DurationSec int
	ElapsedSec  int
	Paused      bool
	LastStart   *time.Time
}

func NewActiveSession(goalID *string, now time.Time, durationSec int) ActiveSession {
	return ActiveSession{
		GoalID:      goalID,
		Start:       now,
		DurationSec: durationSec,
		ElapsedSec:  0,
		Paused:      false,
		LastStart:   &now,
	}
}

func (s ActiveSession) Pause(now time.Time) (ActiveSession, error) {
	if s.Paused {
		return ActiveSession{}, fmt.Errorf("session already paused: %w", apperrors.ErrInvalidState)
	}
	s.ElapsedSec += pendingSeconds(s.LastStart, now)
	s.Paused = true
	s.LastStart = nil
	return s, nil
}

func (s ActiveSession) Resume(now time.Time) (ActiveSession, error) {
	if !s.Paused {
		return ActiveSession{}, fmt.Errorf("session is not paused: %w", apperrors.ErrInvalidState)
	}
	s.Paused = false
	s.LastStart = &now
	return s, nil
}

// Finish folds any pending running interval into the elapsed total without
// flipping the paused flag. Used on stop before the state file is removed.
func (s ActiveSession) Finish(now time.Time) ActiveSession {
	if !s.Paused {
		s.ElapsedSec += pendingSeconds(s.LastStart, now)
		s.LastStart = nil
	}
	return s
}

// LiveElapsedSec is the accumulated total plus the currently running
// interval, if any.
func (s ActiveSession) LiveElapsedSec(now time.Time) int {
	if s.Paused {
		return s.ElapsedSec
	}
	return s.ElapsedSec + pendingSeconds(s.LastStart, now)
}

// RemainingSec floors at zero; a timer that ran past its target never reports
// negative time.
func (s ActiveSession) RemainingSec(now time.Time) int {
	remaining := s.DurationSec - s.LiveElapsedSec(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func pendingSeconds(lastStart *time.Time, now time.Time) int {
	if lastStart == nil {
		return 0
	}
	delta := int(now.Sub(*lastStart).Seconds())
	if delta < 0 {
		return 0
	}
	return delta
}

// Session is the immutable historical record persisted when a timer stops.
// DurationSec is the nominal target, not the accumulated focused time; GoalID
// is a reference, not ownership, and survives goal deletion.
type Session struct {
	ID          string
	GoalID      *string
	Start       time.Time
	DurationSec int
}
