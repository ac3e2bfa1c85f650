package domain

import "time"

// DueSoonWindow is how far ahead a deadline may lie and still count as due
// soon.
const DueSoonWindow = 72 * time.Hour

// Filter is an AND-composed listing predicate. OnlyArchived wins over
// IncludeArchived; without either, only active goals match. DueSoon and
// Overdue form a post-filter and are mutually inclusive when both are set:
// a goal matching either is kept, and goals without a deadline never match.
type Filter struct {
	IncludeArchived bool
	OnlyArchived    bool
	Priority        Priority
	Tags            []string
	ParentID        *string
	DueSoon         bool
	Overdue         bool
}

func (f Filter) Matches(g Goal, now time.Time) bool {
	switch {
	case f.OnlyArchived:
		if !g.Archived {
			return false
		}
	case !f.IncludeArchived:
		if g.Archived {
			return false
		}
	}
	if f.Priority != "" && g.Priority != f.Priority {
		return false
	}
	for _, tag := range f.Tags {
		if !g.HasTag(tag) {
			return false
		}
	}
	if f.ParentID != nil {
		if g.ParentID == nil || *g.ParentID != *f.ParentID {
			return false
		}
	}
	if f.DueSoon || f.Overdue {
		if g.Deadline == nil {
			return false
		}
		deadline := *g.Deadline
		dueSoon := f.DueSoon && !deadline.Before(now) && !deadline.After(now.Add(DueSoonWindow))
		overdue := f.Overdue && deadline.Before(now)
		if !dueSoon && !overdue {
			return false
		}
	}
	return true
}
