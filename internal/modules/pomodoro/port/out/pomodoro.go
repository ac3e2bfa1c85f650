package out

import (
	"context"

	"focal/internal/modules/pomodoro/domain"
)

// ActiveStateStore persists the single timer state file. Load and Mutate
// report ErrNoActiveSession when the file is absent; Save overwrites
// unconditionally; Take removes the file and returns the final state, all
// under one lock acquisition each.
type ActiveStateStore interface {
	Save(ctx context.Context, state domain.ActiveSession) error
	Load(ctx context.Context) (domain.ActiveSession, error)
	Mutate(ctx context.Context, fn func(domain.ActiveSession) (domain.ActiveSession, error)) (domain.ActiveSession, error)
	Take(ctx context.Context) (domain.ActiveSession, error)
}

// HistoryStore is append-only: completed sessions are never updated or
// deleted through normal flow.
type HistoryStore interface {
	Append(ctx context.Context, session domain.Session) error
	List(ctx context.Context) ([]domain.Session, error)
}

type SessionIndexProjector interface {
	Reset(ctx context.Context) error
	InsertSession(ctx context.Context, session domain.Session) error
}

// Hooks notify external collaborators (reminder schedulers and the like)
// about lifecycle edges. Implementations must not block.
type Hooks interface {
	SessionStarted(ctx context.Context)
	SessionEnded(ctx context.Context)
}
