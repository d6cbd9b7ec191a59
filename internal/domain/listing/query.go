// Package listing defines the generic paginated/searched/sorted list
// contract every resource reuses.
package listing

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Query is the client-facing list request. Zero or negative Page/Limit
// fall back to defaults; Search is a case-insensitive substring match;
// sorting only applies when SortBy and SortOrder are both present.
type Query struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Search    string `json:"search"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// Normalized returns a copy with pagination defaults applied.
func (q Query) Normalized() Query {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// Offset is the number of rows skipped before the requested page.
// Call on a normalized query.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Sorted reports whether an explicit ordering was requested.
func (q Query) Sorted() bool {
	return q.SortBy != "" && q.SortOrder != ""
}

// Descending maps SortOrder to a direction: descending only when it
// equals "desc" case-insensitively, ascending otherwise.
func (q Query) Descending() bool {
	return strings.EqualFold(strings.TrimSpace(q.SortOrder), "desc")
}
