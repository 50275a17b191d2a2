package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/validator"
)

// maxTrendMonths bounds the monthly trends window.
const maxTrendMonths = 120

// TransactionServiceOptions tunes the aggregation defaults.
type TransactionServiceOptions struct {
	// TrendsStart anchors the monthly trends window; only its year and month are used.
	TrendsStart time.Time
	// TrendsMonths is the window length used when a caller asks for zero months.
	TrendsMonths int
	// SearchLimit is the page size used when a search does not set one.
	SearchLimit int
}

// DefaultTransactionServiceOptions mirrors the configuration defaults.
func DefaultTransactionServiceOptions() TransactionServiceOptions {
	return TransactionServiceOptions{
		TrendsStart:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		TrendsMonths: 10,
		SearchLimit:  pagination.DefaultLimit,
	}
}

// transactionService handles transaction storage, search and aggregation.
type transactionService struct {
	db   *gorm.DB
	opts TransactionServiceOptions
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, opts TransactionServiceOptions) TransactionServicer {
	defaults := DefaultTransactionServiceOptions()
	if opts.TrendsStart.IsZero() {
		opts.TrendsStart = defaults.TrendsStart
	}
	if opts.TrendsMonths <= 0 {
		opts.TrendsMonths = defaults.TrendsMonths
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaults.SearchLimit
	}
	return &transactionService{db: db, opts: opts}
}

// CreateTransaction validates a normalized payload and stores it.
func (s *transactionService) CreateTransaction(ctx context.Context, in models.TransactionInsert) (*models.Transaction, error) {
	if errs := validator.ValidateInsert(in); len(errs) > 0 {
		return nil, apperrors.WithDetails(apperrors.ErrInsertValidation, errs)
	}

	transaction := in.ToModel()
	if err := s.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return transaction, nil
}

// GetAllTransactions returns the newest transactions first. A non-positive
// limit returns every transaction.
func (s *transactionService) GetAllTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.newestFirst(ctx).
		Scopes(pagination.Limit(limit)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionsByType returns every transaction of the given type, newest first.
func (s *transactionService) GetTransactionsByType(ctx context.Context, transactionType models.TransactionType) ([]models.Transaction, error) {
	if !transactionType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be expense or income")
	}

	var transactions []models.Transaction
	if err := s.newestFirst(ctx).
		Where("type = ?", transactionType).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionsByDateRange returns transactions dated within [start, end], newest first.
func (s *transactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	start, end = models.CalendarDay(start), models.CalendarDay(end)
	if start.After(end) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date must not be after end date")
	}

	var transactions []models.Transaction
	if err := s.newestFirst(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (s *transactionService) newestFirst(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Order("date DESC").Order("id DESC")
}
