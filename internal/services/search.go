package services

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// allFilter is the sentinel the UI sends to disable a select filter.
const allFilter = "All"

// searchCondition builds the WHERE clause shared by the page, the stats and
// the count of a search. The term matches description OR category; every
// other filter is ANDed.
func searchCondition(f SearchFilter) squirrel.Sqlizer {
	cond := squirrel.And{}

	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		cond = append(cond, squirrel.Or{
			squirrel.Expr("LOWER(description) LIKE ?", pattern),
			squirrel.Expr("LOWER(category) LIKE ?", pattern),
		})
	}
	if active(f.Category) {
		cond = append(cond, squirrel.Eq{"category": f.Category})
	}
	if active(f.Type) {
		cond = append(cond, squirrel.Eq{"type": f.Type})
	}

	if len(cond) == 0 {
		return nil
	}
	return cond
}

// active reports whether a select filter narrows the search. Filters are
// exact, case-sensitive matches against the stored lowercase values.
func active(v string) bool {
	return v != "" && v != allFilter
}

// filtered starts a query on transactions restricted by cond.
func (s *transactionService) filtered(ctx context.Context, where string, args []interface{}) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if where != "" {
		q = q.Where(where, args...)
	}
	return q
}

// SearchTransactions returns the newest matching transactions up to the limit,
// together with stats and a count computed over every match. The three
// queries run concurrently; the first failure cancels the others.
func (s *transactionService) SearchTransactions(ctx context.Context, filter SearchFilter) (*SearchResult, error) {
	page := pagination.LimitRequest{Limit: filter.Limit}
	page.Defaults(s.opts.SearchLimit)

	var (
		where string
		args  []interface{}
	)
	if cond := searchCondition(filter); cond != nil {
		var err error
		where, args, err = cond.ToSql()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrSearchFailed, err)
		}
	}

	var (
		transactions []models.Transaction
		stats        statsRow
		totalCount   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.filtered(gctx, where, args).
			Order("date DESC").Order("id DESC").
			Scopes(pagination.Limit(page.Limit)).
			Find(&transactions).Error
	})
	g.Go(func() error {
		return selectStats(s.filtered(gctx, where, args)).Scan(&stats).Error
	})
	g.Go(func() error {
		return s.filtered(gctx, where, args).Count(&totalCount).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSearchFailed, err)
	}

	window := pagination.NewWindow(transactions, page.Limit, totalCount)
	return &SearchResult{
		Transactions: window.Items,
		SummaryStats: stats.toStats(),
		TotalCount:   window.TotalCount,
		HasMore:      window.HasMore,
	}, nil
}
