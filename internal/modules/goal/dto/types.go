package dto

import "time"

type AddInput struct {
	Title    string
	Priority string
	Tags     []string
	ParentID string
	Deadline *time.Time
}

type UpdateInput struct {
	ID       string
	Title    *string
	Priority *string
	Deadline *time.Time
}

type ListInput struct {
	IncludeArchived bool
	OnlyArchived    bool
	Priority        string
	Tags            []string
	ParentID        string
	DueSoon         bool
	Overdue         bool
}

type GoalOutput struct {
	ID        string
	Title     string
	Created   time.Time
	Priority  string
	Archived  bool
	Completed bool
	Tags      []string
	ParentID  string
	Deadline  *time.Time
}
