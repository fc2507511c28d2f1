package domain

import "fmt"

const (
	// DefaultLimit is the page size used when the client does not send one.
	DefaultLimit = 10
	// MaxLimit caps the page size to prevent runaway queries.
	MaxLimit = 100
)

// ListParams carries limit/offset values from the HTTP layer to the repo layer.
// Offset is zero-based and applied after the total count is taken, so
// pagination links always reflect the full filtered result set.
type ListParams struct {
	Limit  int
	Offset int
}

// NewListParams builds a ListParams from optional HTTP query values.
// Nil pointers fall back to the defaults (limit=10, offset=0).
// Out-of-range values are rejected with ErrValidation rather than clamped,
// so clients learn about bad paging input instead of silently getting a
// different page than they asked for.
func NewListParams(limit, offset *int) (ListParams, error) {
	p := ListParams{Limit: DefaultLimit, Offset: 0}
	if limit != nil {
		if *limit < 1 || *limit > MaxLimit {
			return ListParams{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxLimit)
		}
		p.Limit = *limit
	}
	if offset != nil {
		if *offset < 0 {
			return ListParams{}, fmt.Errorf("%w: offset must not be negative", ErrValidation)
		}
		p.Offset = *offset
	}
	return p, nil
}
