package postgres

import (
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// orderClause builds a deterministic ORDER BY for a listing query.
// sortable maps client-facing field names to columns; an unknown sortBy
// falls back to primary-key order. The id tiebreak keeps pagination
// stable across repeated calls on unmodified data.
func orderClause(sortable map[string]string, q listing.Query, idCol string) string {
	if q.Sorted() {
		if col, ok := sortable[q.SortBy]; ok {
			dir := "ASC"
			if q.Descending() {
				dir = "DESC"
			}
			return fmt.Sprintf(" ORDER BY %s %s, %s ASC", col, dir, idCol)
		}
	}
	return fmt.Sprintf(" ORDER BY %s ASC", idCol)
}

// searchPattern wraps a search term for case-insensitive substring
// matching via ILIKE.
func searchPattern(s string) string {
	return "%" + s + "%"
}
