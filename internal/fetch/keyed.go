package fetch

import (
	"context"
	"sync"
)

// KeyedFetchFunc loads the value of a resource for one key.
type KeyedFetchFunc[K comparable, T any] func(ctx context.Context, key K) (*T, error)

// Keyed is a resource whose fetch depends on a key, typically an entity
// id taken from a route. While the key is the zero value the resource
// stays in the loading state and never touches the network, matching a
// page that renders before its route parameter is known.
type Keyed[K comparable, T any] struct {
	fetch KeyedFetchFunc[K, T]

	mu    sync.Mutex
	state State[T]
	key   K
	seq   uint64
}

// NewKeyed creates a keyed resource in the loading state.
func NewKeyed[K comparable, T any](fetch KeyedFetchFunc[K, T]) *Keyed[K, T] {
	return &Keyed[K, T]{
		fetch: fetch,
		state: State[T]{Loading: true},
	}
}

// State returns the current snapshot.
func (k *Keyed[K, T]) State() State[T] {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// Load fetches for the given key. A zero key skips the fetch entirely
// and leaves the resource loading. Re-loading with the key already
// settled fetches again only if the key changed; use Reload to force a
// refresh for the same key.
func (k *Keyed[K, T]) Load(ctx context.Context, key K) State[T] {
	var zero K
	if key == zero {
		k.mu.Lock()
		k.state = State[T]{Loading: true}
		k.key = zero
		st := k.state
		k.mu.Unlock()
		return st
	}

	k.mu.Lock()
	if key == k.key && !k.state.Loading {
		st := k.state
		k.mu.Unlock()
		return st
	}
	k.key = key
	k.mu.Unlock()

	return k.Reload(ctx, key)
}

// Reload fetches for the given key unconditionally. As with Resource,
// overlapping reloads settle last-writer-only.
func (k *Keyed[K, T]) Reload(ctx context.Context, key K) State[T] {
	var zero K
	if key == zero {
		return k.Load(ctx, key)
	}

	k.mu.Lock()
	k.seq++
	seq := k.seq
	k.key = key
	k.state = State[T]{Loading: true}
	k.mu.Unlock()

	data, err := k.fetch(ctx, key)

	next := State[T]{}
	if err != nil {
		next.Err = errorMessage(err)
	} else {
		next.Data = data
	}

	k.mu.Lock()
	if seq == k.seq {
		k.state = next
	}
	k.mu.Unlock()
	return next
}
