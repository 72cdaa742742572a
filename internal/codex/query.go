package codex

import (
	"net/url"
	"strconv"
)

// PopulateAll asks the backend to expand every relation of an entity.
const PopulateAll = "*"

// Pagination requests a page window. Zero fields are omitted from the
// encoded query.
type Pagination struct {
	Page     int
	PageSize int
}

// Query describes the optional directives of a collection or single-entity
// read. All fields are optional; the zero Query encodes to the empty
// string.
//
// This is a pass-through encoder, not a query-safety layer: filter values
// are string-coerced and otherwise unvalidated.
type Query struct {
	// Populate lists relation names to expand, in order. Use PopulateAll
	// for the full-population directive.
	Populate []string
	// Sort lists "field:direction" keys, in order.
	Sort []string
	// Filters maps field names to scalar values, rendered as
	// filters[field]=value.
	Filters map[string]string
	// Pagination selects a page window.
	Pagination *Pagination
	// Fields restricts the attribute selection.
	Fields []string
}

// Encode renders the query as a URL-encoded string. Multi-valued
// directives are appended as repeated keys, never comma-joined, to match
// the backend's array-in-querystring convention. Output is deterministic:
// keys are sorted, values keep their declared order.
func (q Query) Encode() string {
	v := url.Values{}
	for _, p := range q.Populate {
		v.Add("populate", p)
	}
	for _, s := range q.Sort {
		v.Add("sort", s)
	}
	for field, value := range q.Filters {
		v.Add("filters["+field+"]", value)
	}
	if p := q.Pagination; p != nil {
		if p.Page > 0 {
			v.Add("pagination[page]", strconv.Itoa(p.Page))
		}
		if p.PageSize > 0 {
			v.Add("pagination[pageSize]", strconv.Itoa(p.PageSize))
		}
	}
	for _, f := range q.Fields {
		v.Add("fields", f)
	}
	return v.Encode()
}
