package out

import (
	"context"

	pomodoroout "focal/internal/modules/pomodoro/port/out"
)

// HookRegistry is an explicit callback registry handed to the usecase at
// construction. External collaborators (reminder schedulers, notifiers)
// register here instead of mutating package-level state.
type HookRegistry struct {
	started []func(context.Context)
	ended   []func(context.Context)
}

func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

var _ pomodoroout.Hooks = (*HookRegistry)(nil)

func (r *HookRegistry) OnSessionStarted(fn func(context.Context)) {
	r.started = append(r.started, fn)
}

func (r *HookRegistry) OnSessionEnded(fn func(context.Context)) {
	r.ended = append(r.ended, fn)
}

func (r *HookRegistry) SessionStarted(ctx context.Context) {
	for _, fn := range r.started {
		fn(ctx)
	}
}

func (r *HookRegistry) SessionEnded(ctx context.Context) {
	for _, fn := range r.ended {
		fn(ctx)
	}
}
