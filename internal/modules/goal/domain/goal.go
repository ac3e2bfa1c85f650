package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	apperrors "focal/internal/platform/errors"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("unsupported priority %q: %w", string(p), apperrors.ErrInvalidInput)
	}
}

// ParsePriority maps user input to a Priority, defaulting to medium for the
// empty string.
func ParsePriority(raw string) (Priority, error) {
	if raw == "" {
		return PriorityMedium, nil
	}
	priority := Priority(strings.ToLower(raw))
	if err := priority.Validate(); err != nil {
		return "", err
	}
	return priority, nil
}

var tagPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-_]{0,29}$`)

// NormalizeTag lowercases a tag and validates it against the tag syntax:
// lowercase alphanumerics, hyphen and underscore, 1-30 characters.
func NormalizeTag(raw string) (string, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if !tagPattern.MatchString(tag) {
		return "", fmt.Errorf("invalid tag %q (must match %s): %w", raw, tagPattern.String(), apperrors.ErrInvalidInput)
	}
	return tag, nil
}

// NormalizeTags normalizes every tag, drops duplicates, and returns the set
// sorted for deterministic storage.
func NormalizeTags(raw []string) ([]string, error) {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(raw))
	for _, candidate := range raw {
		tag, err := NormalizeTag(candidate)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

// Goal is a trackable objective. ParentID is validated against an existing
// goal at creation time only; deleting the parent later leaves children with
// a dangling reference on purpose.
type Goal struct {
	ID        string
	Title     string
	Created   time.Time
	Priority  Priority
	Archived  bool
	Completed bool
	Tags      []string
	ParentID  *string
	Deadline  *time.Time
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("goal id is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required: %w", apperrors.ErrInvalidInput)
	}
	if err := g.Priority.Validate(); err != nil {
		return err
	}
	for _, tag := range g.Tags {
		if !tagPattern.MatchString(tag) {
			return fmt.Errorf("invalid tag %q: %w", tag, apperrors.ErrInvalidInput)
		}
	}
	return nil
}

func (g Goal) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WithTags returns a copy carrying the union of the current tag set and the
// given normalized tags, sorted.
func (g Goal) WithTags(tags []string) Goal {
	merged := map[string]struct{}{}
	for _, t := range g.Tags {
		merged[t] = struct{}{}
	}
	for _, t := range tags {
		merged[t] = struct{}{}
	}
	out := make([]string, 0, len(merged))
	for t := range merged {
		out = append(out, t)
	}
	sort.Strings(out)
	g.Tags = out
	return g
}

// WithoutTag returns a copy without the given tag. Removing an absent tag is
// a silent no-op.
func (g Goal) WithoutTag(tag string) Goal {
	if !g.HasTag(tag) {
		return g
	}
	out := make([]string, 0, len(g.Tags)-1)
	for _, t := range g.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	g.Tags = out
	return g
}
