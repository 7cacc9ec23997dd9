// Package listing holds the search filter, the paginator and the board state
// transitions. Everything here is pure: results depend only on the arguments.
package listing

import (
	"strings"

	"job-routing/internal/domain/job"
)

const DefaultPageSize = 5

// State is the per-view board state. The zero value is not valid; use
// NewState.
type State struct {
	Query string
	Page  int
}

func NewState() State {
	return State{Query: "", Page: 1}
}

// ApplyQuery sets the query. A changed query returns to page 1 so a narrowed
// result set is never viewed from a stale offset.
func ApplyQuery(s State, query string) State {
	if query == s.Query {
		return s
	}
	return State{Query: query, Page: 1}
}

// ApplyPage sets the 1-based page. Values below 1 become 1; values past the
// last page are kept and resolve to an empty page.
func ApplyPage(s State, page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// Filter keeps postings whose title or description contains query,
// case-insensitively, in their original order.
func Filter(postings []job.Posting, query string) []job.Posting {
	out := make([]job.Posting, 0, len(postings))
	if query == "" {
		return append(out, postings...)
	}
	q := strings.ToLower(query)
	for _, p := range postings {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p contains the already lowercased query.
func Matches(p job.Posting, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery)
}

func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the postings on the 1-based page. Pages outside
// 1..PageCount yield an empty slice.
func Paginate(postings []job.Posting, pageSize, page int) []job.Posting {
	if pageSize <= 0 || page < 1 || page > PageCount(len(postings), pageSize) {
		return []job.Posting{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(postings) {
		end = len(postings)
	}
	out := make([]job.Posting, end-start)
	copy(out, postings[start:end])
	return out
}

// Page is one computed view of the board.
type Page struct {
	Query     string
	Page      int
	PageSize  int
	PageCount int
	Total     int
	Items     []job.Posting
}

// Compute derives the displayed page for s from the full record set.
func Compute(postings []job.Posting, s State, pageSize int) Page {
	filtered := Filter(postings, s.Query)
	return Page{
		Query:     s.Query,
		Page:      s.Page,
		PageSize:  pageSize,
		PageCount: PageCount(len(filtered), pageSize),
		Total:     len(filtered),
		Items:     Paginate(filtered, pageSize, s.Page),
	}
}
