// Package pagination implements the "load more" window used by listings: a
// page always starts at the newest record and grows by raising the limit.
package pagination

import (
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the page size when none is requested.
	DefaultLimit = 8
	// MaxLimit caps how many records a single request may load.
	MaxLimit = 100
)

// LimitRequest holds the window size parsed from query strings.
type LimitRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in the default limit when none was provided.
func (p *LimitRequest) Defaults(fallback int) {
	if p.Limit <= 0 {
		p.Limit = fallback
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Window wraps the visible slice of a listing with the size of the full result.
type Window[T any] struct {
	Items      []T
	TotalCount int64
	HasMore    bool
}

// NewWindow creates a Window from the loaded items, the limit used to load
// them and the total number of matching records.
func NewWindow[T any](items []T, limit int, totalCount int64) Window[T] {
	if items == nil {
		items = []T{}
	}
	return Window[T]{
		Items:      items,
		TotalCount: totalCount,
		HasMore:    int64(limit) < totalCount,
	}
}

// Limit returns a GORM scope that applies LIMIT for the given request.
// A non-positive limit leaves the query unbounded.
func Limit(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	}
}
