package dto

import "time"

type StartInput struct {
	DurationMin int
	GoalID      string
}

type StartOutput struct {
	GoalID      string
	Start       time.Time
	DurationSec int
}

type StateOutput struct {
	GoalID       string
	Start        time.Time
	DurationSec  int
	ElapsedSec   int
	RemainingSec int
	Paused       bool
}

type SessionOutput struct {
	ID          string
	GoalID      string
	Start       time.Time
	DurationSec int
}
