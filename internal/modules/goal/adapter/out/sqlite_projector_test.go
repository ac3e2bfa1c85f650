package out_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	goalout "focal/internal/modules/goal/adapter/out"
	"focal/internal/modules/goal/domain"

	_ "modernc.org/sqlite"
)

func TestProjectorUpsertResetAndDelete(t *testing.T) {
	t.Parallel()
	indexPath := filepath.Join(t.TempDir(), "index.db")
	projector, err := goalout.NewSQLiteGoalProjector(indexPath)
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	ctx := context.Background()

	goal := domain.Goal{
		ID:       "g1",
		Title:    "index me",
		Created:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Priority: domain.PriorityHigh,
		Tags:     []string{"craft", "go"},
	}
	if err := projector.UpsertGoal(ctx, goal); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	goal.Title = "renamed"
	goal.Archived = true
	if err := projector.UpsertGoal(ctx, goal); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	db, err := sql.Open("sqlite", indexPath)
	if err != nil {
		t.Fatalf("open index for verification: %v", err)
	}
	defer db.Close()

	var title, tags string
	var archived int
	row := db.QueryRowContext(ctx, `SELECT title, tags, archived FROM goals WHERE id = ?`, "g1")
	if err := row.Scan(&title, &tags, &archived); err != nil {
		t.Fatalf("scan projected row: %v", err)
	}
	if title != "renamed" || tags != "craft,go" || archived != 1 {
		t.Fatalf("projection mismatch: title=%q tags=%q archived=%d", title, tags, archived)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("upsert must replace, not duplicate: %d rows", count)
	}

	if err := projector.DeleteGoal(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		t.Fatalf("count after delete: %v", err)
	}
	if count != 0 {
		t.Fatalf("row must be gone, got %d", count)
	}

	if err := projector.UpsertGoal(ctx, goal); err != nil {
		t.Fatalf("reinsert: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		t.Fatalf("count after reset: %v", err)
	}
	if count != 0 {
		t.Fatalf("reset must clear the table, got %d", count)
	}
}

func TestReindexRebuildsProjectionFromDocumentStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.db")
	projector, err := goalout.NewSQLiteGoalProjector(indexPath)
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	ctx := context.Background()

	// Simulate a stale index entry that the source of truth no longer has.
	stale := domain.Goal{ID: "stale", Title: "gone", Created: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Priority: domain.PriorityLow}
	if err := projector.UpsertGoal(ctx, stale); err != nil {
		t.Fatalf("seed stale row: %v", err)
	}

	current := []domain.Goal{
		{ID: "g1", Title: "one", Created: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Priority: domain.PriorityMedium},
		{ID: "g2", Title: "two", Created: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Priority: domain.PriorityHigh},
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, g := range current {
		if err := projector.UpsertGoal(ctx, g); err != nil {
			t.Fatalf("upsert %s: %v", g.ID, err)
		}
	}

	db, err := sql.Open("sqlite", indexPath)
	if err != nil {
		t.Fatalf("open index for verification: %v", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("rebuilt index must hold exactly the current goals, got %d", count)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals WHERE id = 'stale'`).Scan(&count); err != nil {
		t.Fatalf("stale count: %v", err)
	}
	if count != 0 {
		t.Fatalf("stale row must not survive a rebuild")
	}
}
