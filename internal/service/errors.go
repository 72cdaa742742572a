package service

import "errors"

// Centralized service layer errors. Entity services wrap transport
// failures with kind/operation context instead of defining sentinels per
// failure; the sentinels below cover conditions rejected before any
// request is issued.
var (
	// ErrInvalidID rejects non-positive entity ids client-side. The
	// encoder does not validate ids, so without this guard a bad id
	// would produce a malformed URL and a backend-level not-found.
	ErrInvalidID = errors.New("entity id must be a positive integer")

	// ErrMissingToken rejects a current-user lookup without a bearer
	// token. The lookup never falls back to ambient session state.
	ErrMissingToken = errors.New("bearer token is required")

	// ErrMissingKey rejects filter-injecting lookups with an empty key.
	ErrMissingKey = errors.New("filter key is required")
)
