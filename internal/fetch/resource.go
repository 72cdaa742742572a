package fetch

import (
	"context"
	"errors"
	"sync"

	"github.com/emberlore/codex/internal/codex"
)

// FallbackMessage is shown when a load fails with an error that carries
// no user-facing message of its own.
const FallbackMessage = "unknown error"

// State is a snapshot of a resource's lifecycle. Exactly one of the
// three fields is meaningful at a time: Loading while a fetch is in
// flight (and before the first fetch starts), Err after a failure,
// Data after a success.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     string
}

// FetchFunc loads the value of a resource.
type FetchFunc[T any] func(ctx context.Context) (*T, error)

// Resource tracks one remote read.
type Resource[T any] struct {
	fetch FetchFunc[T]

	mu    sync.Mutex
	state State[T]
	seq   uint64
}

// NewResource creates a resource in the loading state. No fetch happens
// until Load is called.
func NewResource[T any](fetch FetchFunc[T]) *Resource[T] {
	return &Resource[T]{
		fetch: fetch,
		state: State[T]{Loading: true},
	}
}

// State returns the current snapshot.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Load runs the fetch and publishes the outcome. If another Load starts
// while this one is in flight, this one's outcome is discarded: only
// the most recent load settles the state. Load returns the settled
// state as seen by this call, even when it lost the race.
func (r *Resource[T]) Load(ctx context.Context) State[T] {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.state = State[T]{Loading: true}
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	next := State[T]{}
	if err != nil {
		next.Err = errorMessage(err)
	} else {
		next.Data = data
	}

	r.mu.Lock()
	if seq == r.seq {
		r.state = next
	}
	r.mu.Unlock()
	return next
}

// errorMessage extracts a message suitable for display. Backend errors
// carry their own message; anything else collapses to the fallback so
// internals never leak into a page.
func errorMessage(err error) string {
	var apiErr *codex.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}
