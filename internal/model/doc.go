// Package model defines the wire-level data structures exchanged with the
// content backend.
//
// The backend wraps every successful read in a common envelope:
//
//	{ "data": <entity or entity[]>, "meta": { "pagination": {...} } }
//
// and every entity as an id plus an attributes object:
//
//	{ "id": 1, "attributes": { "Name": "...", "createdAt": "...", ... } }
//
// Types here mirror those shapes unmodified. The client performs no
// normalization and holds no authoritative copy of any entity; everything
// in this package is a transcript of what the backend sent.
//
// # Entities
//
//   - World: a realm with an ordered collection of places
//   - Place: a location within exactly one world
//   - Monster: a bestiary entry
//   - Item: an inventory entry
//   - AuthUser: the account payload returned by the auth endpoints
//
// # Images
//
// Image fields use the backend's nested media shape and may be null.
// Image.DisplayURL selects a displayable URL by falling back through
// large format, medium format, then the base url. Consumers supply their
// own local default when no URL is available.
package model
