package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focal/internal/modules/pomodoro/adapter/out"
	"focal/internal/modules/pomodoro/domain"
	apperrors "focal/internal/platform/errors"
)

func writeState(t *testing.T, path, payload string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write state file: %v", err)
	}
}

func TestLoadToleratesLegacyStateFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	writeState(t, path, `{"start":"2026-08-30T09:00:00Z","duration_sec":1500,"goal_id":"g1"}`)

	store := out.NewFileActiveStateStore(path)
	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	if !state.Start.Equal(start) {
		t.Fatalf("start: got %v", state.Start)
	}
	if state.ElapsedSec != 0 || state.Paused {
		t.Fatalf("legacy file must default to a running timer with no elapsed time: %+v", state)
	}
	if state.LastStart == nil || !state.LastStart.Equal(start) {
		t.Fatalf("missing last_start must default to start, got %v", state.LastStart)
	}
	if state.GoalID == nil || *state.GoalID != "g1" {
		t.Fatalf("goal id: got %v", state.GoalID)
	}
}

func TestLoadKeepsExplicitNullLastStart(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	writeState(t, path, `{"start":"2026-08-30T09:00:00Z","duration_sec":1500,"goal_id":null,"elapsed_sec":120,"paused":true,"last_start":null}`)

	store := out.NewFileActiveStateStore(path)
	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !state.Paused || state.ElapsedSec != 120 {
		t.Fatalf("paused state: %+v", state)
	}
	if state.LastStart != nil {
		t.Fatalf("explicit null last_start must stay nil, got %v", state.LastStart)
	}
}

func TestLoadDistinguishesMissingAndCorrupt(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileActiveStateStore(filepath.Join(dir, "session.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("missing file: expected ErrNoActiveSession, got %v", err)
	}

	path := filepath.Join(dir, "broken.json")
	writeState(t, path, `{not json`)
	store = out.NewFileActiveStateStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrCorruptData) {
		t.Fatalf("garbage file: expected ErrCorruptData, got %v", err)
	}

	path = filepath.Join(dir, "badtime.json")
	writeState(t, path, `{"start":"yesterday","duration_sec":1500}`)
	store = out.NewFileActiveStateStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrCorruptData) {
		t.Fatalf("bad timestamp: expected ErrCorruptData, got %v", err)
	}
}

func TestSaveLoadRoundTripAndTolerantReadIsMemoryOnly(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	writeState(t, path, `{"start":"2026-08-30T09:00:00Z","duration_sec":1500}`)

	store := out.NewFileActiveStateStore(path)
	ctx := context.Background()

	// A plain load never rewrites the legacy file.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("load must not rewrite the state file")
	}

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	state := domain.NewActiveSession(nil, now, 600)
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load saved: %v", err)
	}
	if !loaded.Start.Equal(state.Start) || loaded.DurationSec != 600 || loaded.Paused {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestTakeRemovesTheStateFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	store := out.NewFileActiveStateStore(path)
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, domain.NewActiveSession(nil, now, 600)); err != nil {
		t.Fatalf("save: %v", err)
	}
	taken, err := store.Take(ctx)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if !taken.Start.Equal(now) {
		t.Fatalf("taken state: %+v", taken)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("state file must be removed, stat err: %v", err)
	}
	if _, err := store.Take(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("second take: expected ErrNoActiveSession, got %v", err)
	}
}
