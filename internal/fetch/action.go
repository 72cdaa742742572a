package fetch

import (
	"context"
	"sync"
)

// ActionFunc performs a one-shot write such as a login.
type ActionFunc[Req, Resp any] func(ctx context.Context, req Req) (*Resp, error)

// Action wraps a write operation. Unlike Resource it starts idle, and
// Invoke both records the outcome as state and returns it to the
// caller, so a form handler can redirect on success while the recorded
// error message survives for re-rendering the form.
type Action[Req, Resp any] struct {
	run ActionFunc[Req, Resp]

	mu    sync.Mutex
	state State[Resp]
}

// NewAction creates an idle action.
func NewAction[Req, Resp any](run ActionFunc[Req, Resp]) *Action[Req, Resp] {
	return &Action[Req, Resp]{run: run}
}

// State returns the outcome of the most recent Invoke.
func (a *Action[Req, Resp]) State() State[Resp] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Invoke runs the action, records the outcome, and returns it. The
// error is returned as-is so callers can still inspect it.
func (a *Action[Req, Resp]) Invoke(ctx context.Context, req Req) (*Resp, error) {
	a.mu.Lock()
	a.state = State[Resp]{Loading: true}
	a.mu.Unlock()

	resp, err := a.run(ctx, req)

	a.mu.Lock()
	if err != nil {
		a.state = State[Resp]{Err: errorMessage(err)}
	} else {
		a.state = State[Resp]{Data: resp}
	}
	a.mu.Unlock()
	return resp, err
}
