package model

import "time"

// Response is the backend's envelope for every successful read. T is
// either a single entity or a slice of entities depending on the endpoint.
type Response[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// Meta carries collection metadata. Pagination is only present on
// collection reads.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a collection response.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Timestamps are the lifecycle fields the backend stamps on every entity.
// PublishedAt is null for drafts.
type Timestamps struct {
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// WriteRequest wraps a create/update payload under the "data" key the
// backend expects.
type WriteRequest[T any] struct {
	Data T `json:"data"`
}
