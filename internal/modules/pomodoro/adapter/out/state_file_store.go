package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focal/internal/modules/pomodoro/domain"
	pomodoroout "focal/internal/modules/pomodoro/port/out"
	apperrors "focal/internal/platform/errors"
	"focal/internal/platform/lockfile"
)

// FileActiveStateStore persists the single timer as session.json next to its
// own lock file. Absence of the file means no active session.
//
// Legacy files written before pause support lack elapsed_sec, paused and
// last_start; those default in memory only (0, false, the start value) and
// are never written back. This tolerant-read policy is deliberately different
// from the goal store's durable migration.
type FileActiveStateStore struct {
	path string
}

func NewFileActiveStateStore(path string) pomodoroout.ActiveStateStore {
	return &FileActiveStateStore{path: path}
}

type stateFile struct {
	Start       string  `json:"start"`
	DurationSec int     `json:"duration_sec"`
	GoalID      *string `json:"goal_id"`
	ElapsedSec  int     `json:"elapsed_sec"`
	Paused      bool    `json:"paused"`
	LastStart   *string `json:"last_start"`
}

func (s *FileActiveStateStore) Save(_ context.Context, state domain.ActiveSession) error {
	return lockfile.WithLock(s.path, func() error {
		return s.write(state)
	})
}

func (s *FileActiveStateStore) Load(_ context.Context) (domain.ActiveSession, error) {
	var state domain.ActiveSession
	err := lockfile.WithLock(s.path, func() error {
		loaded, err := s.read()
		if err != nil {
			return err
		}
		state = loaded
		return nil
	})
	if err != nil {
		return domain.ActiveSession{}, err
	}
	return state, nil
}

func (s *FileActiveStateStore) Mutate(_ context.Context, fn func(domain.ActiveSession) (domain.ActiveSession, error)) (domain.ActiveSession, error) {
	var out domain.ActiveSession
	err := lockfile.WithLock(s.path, func() error {
		state, err := s.read()
		if err != nil {
			return err
		}
		updated, err := fn(state)
		if err != nil {
			return err
		}
		if err := s.write(updated); err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.ActiveSession{}, err
	}
	return out, nil
}

func (s *FileActiveStateStore) Take(_ context.Context) (domain.ActiveSession, error) {
	var out domain.ActiveSession
	err := lockfile.WithLock(s.path, func() error {
		state, err := s.read()
		if err != nil {
			return err
		}
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session state: %w", err)
		}
		out = state
		return nil
	})
	if err != nil {
		return domain.ActiveSession{}, err
	}
	return out, nil
}

func (s *FileActiveStateStore) read() (domain.ActiveSession, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveSession{}, apperrors.ErrNoActiveSession
		}
		return domain.ActiveSession{}, fmt.Errorf("read session state: %w", err)
	}
	return decodeState(payload)
}

func (s *FileActiveStateStore) write(state domain.ActiveSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	file := stateFile{
		Start:       state.Start.Format(time.RFC3339),
		DurationSec: state.DurationSec,
		GoalID:      state.GoalID,
		ElapsedSec:  state.ElapsedSec,
		Paused:      state.Paused,
	}
	if state.LastStart != nil {
		formatted := state.LastStart.Format(time.RFC3339)
		file.LastStart = &formatted
	}
	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

func decodeState(payload []byte) (domain.ActiveSession, error) {
	// Key presence matters: a legacy file without last_start defaults it to
	// start, while an explicit null means paused. Decode through a raw map to
	// tell the two apart.
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return domain.ActiveSession{}, fmt.Errorf("decode session state: %w", apperrors.ErrCorruptData)
	}
	var file stateFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return domain.ActiveSession{}, fmt.Errorf("decode session state: %w", apperrors.ErrCorruptData)
	}
	start, err := time.Parse(time.RFC3339, file.Start)
	if err != nil {
		return domain.ActiveSession{}, fmt.Errorf("parse session start %q: %w", file.Start, apperrors.ErrCorruptData)
	}
	state := domain.ActiveSession{
		GoalID:      file.GoalID,
		Start:       start,
		DurationSec: file.DurationSec,
		ElapsedSec:  file.ElapsedSec,
		Paused:      file.Paused,
	}
	if _, ok := raw["last_start"]; !ok {
		state.LastStart = &start
	} else if file.LastStart != nil {
		lastStart, err := time.Parse(time.RFC3339, *file.LastStart)
		if err != nil {
			return domain.ActiveSession{}, fmt.Errorf("parse session last_start %q: %w", *file.LastStart, apperrors.ErrCorruptData)
		}
		state.LastStart = &lastStart
	}
	return state, nil
}
