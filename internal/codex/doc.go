// Package codex implements the HTTP client for the content backend.
//
// The package has two parts: Query, which serializes population, sort,
// filter, pagination, and field-selection directives into the backend's
// querystring conventions, and Client, a single pre-configured transport
// (base URL, timeout, JSON headers) shared by all entity services.
//
// # Interception seams
//
// The client keeps two seams open:
//
//   - Outgoing: a RequestHook invoked on every request before it is sent.
//     It is a no-op pass-through by default and exists so a future
//     default bearer credential can be attached without touching callers.
//     Per-call credentials use WithBearer instead (see AuthService.Me).
//   - Incoming: every transport-level failure is logged exactly once at
//     the client boundary, then returned to the caller unchanged.
//
// The client performs no retries, no circuit breaking, and no caching. A
// timeout or non-2xx status surfaces as an ordinary error; non-2xx
// responses carrying the backend's error envelope decode into *APIError.
package codex
