package out_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	goalout "focal/internal/modules/goal/adapter/out"
	"focal/internal/modules/goal/domain"
	"focal/internal/platform/docdb"
	apperrors "focal/internal/platform/errors"
)

func TestMigrationBackfillsMissingFieldsAndIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "db.json")
	legacy := `{"goals":[{"id":"g1","title":"Old goal","created":"2024-01-02T10:00:00Z","priority":"high","archived":false}]}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy db: %v", err)
	}

	store, err := goalout.NewDocumentGoalStore(docdb.Open(path))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	goal, err := store.Get(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get migrated goal: %v", err)
	}
	if goal.Tags == nil || len(goal.Tags) != 0 {
		t.Fatalf("expected empty tag set, got %v", goal.Tags)
	}
	if goal.ParentID != nil || goal.Deadline != nil || goal.Completed {
		t.Fatalf("expected defaulted fields, got %+v", goal)
	}
	if goal.Priority != domain.PriorityHigh || goal.Archived {
		t.Fatalf("existing fields must not be overwritten: %+v", goal)
	}

	afterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after first migration: %v", err)
	}
	if _, err := goalout.NewDocumentGoalStore(docdb.Open(path)); err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	afterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after second migration: %v", err)
	}
	if !bytes.Equal(afterFirst, afterSecond) {
		t.Fatalf("second migration pass must be byte-identical:\n%s\nvs\n%s", afterFirst, afterSecond)
	}
}

func TestGoalRoundTripPreservesAllFields(t *testing.T) {
	t.Parallel()
	store, err := goalout.NewDocumentGoalStore(docdb.Open(filepath.Join(t.TempDir(), "db.json")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	parent := "p1"
	deadline := time.Date(2026, 9, 15, 12, 30, 45, 0, time.UTC)
	want := domain.Goal{
		ID:        "g1",
		Title:     "Write more Go",
		Created:   time.Date(2026, 8, 30, 9, 0, 1, 0, time.UTC),
		Priority:  domain.PriorityLow,
		Archived:  true,
		Completed: true,
		Tags:      []string{"craft", "writing"},
		ParentID:  &parent,
		Deadline:  &deadline,
	}
	if err := store.Add(context.Background(), want); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	got, err := store.Get(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.ID != want.ID || got.Title != want.Title || got.Priority != want.Priority ||
		got.Archived != want.Archived || got.Completed != want.Completed {
		t.Fatalf("scalar fields mismatch: %+v", got)
	}
	if !got.Created.Equal(want.Created) {
		t.Fatalf("created mismatch: %v vs %v", got.Created, want.Created)
	}
	if got.ParentID == nil || *got.ParentID != parent {
		t.Fatalf("parent mismatch: %v", got.ParentID)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Fatalf("deadline mismatch: %v", got.Deadline)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "craft" || got.Tags[1] != "writing" {
		t.Fatalf("tags mismatch: %v", got.Tags)
	}
}

func TestUpdateAndRemoveFailOnMissingGoal(t *testing.T) {
	t.Parallel()
	store, err := goalout.NewDocumentGoalStore(docdb.Open(filepath.Join(t.TempDir(), "db.json")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	missing := domain.Goal{ID: "nope", Title: "x", Created: time.Now().UTC(), Priority: domain.PriorityMedium}
	if err := store.Update(context.Background(), missing); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("update missing: expected ErrNotFound, got %v", err)
	}
	if err := store.Remove(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("remove missing: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get missing: expected ErrNotFound, got %v", err)
	}
}
