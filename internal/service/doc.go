// Package service exposes one service per entity kind of the content
// backend, plus an aggregate that assembles page-level bundles.
//
// # Service pattern
//
// All entity services follow a consistent pattern:
//
//   - Constructor (NewXxxService) accepts the shared codex.Client
//   - Read operations take a codex.Query and return the backend's
//     response envelope untouched — no normalization, no caching
//   - Write operations wrap their payload under the "data" key
//   - Every failure is re-raised wrapped with the entity kind, the
//     operation, and (for single-entity operations) the requested id,
//     preserving the original error via %w
//
// # Aggregate fail-open
//
// DataService composes several entity calls concurrently and never
// propagates a constituent failure: it logs and substitutes an empty
// collection, so pages consuming it always render.
package service
