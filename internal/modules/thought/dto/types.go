package dto

import "time"

type AddInput struct {
	Text   string
	GoalID string
}

type ListInput struct {
	GoalID string
	// Limit caps the result count after sorting; zero means no limit.
	Limit       int
	OldestFirst bool
}

type ThoughtOutput struct {
	ID        string
	Text      string
	Timestamp time.Time
	GoalID    string
}
