package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "focal/internal/platform/errors"
)

// MaxTextLen bounds a thought's text after trimming, counted in runes so
// multibyte text gets the same budget as ASCII.
const MaxTextLen = 500

// Thought is an append-only free-text note, optionally attached to a goal.
type Thought struct {
	ID        string
	Text      string
	Timestamp time.Time
	GoalID    *string
}

func (t Thought) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("thought id is required: %w", apperrors.ErrInvalidInput)
	}
	if t.Text == "" {
		return fmt.Errorf("thought text is empty: %w", apperrors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(t.Text) > MaxTextLen {
		return fmt.Errorf("thought text exceeds %d characters: %w", MaxTextLen, apperrors.ErrInvalidInput)
	}
	return nil
}
