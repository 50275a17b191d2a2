package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID            uint                   `json:"id" example:"42"`
	Amount        string                 `json:"amount" example:"-12.50"`
	Category      models.Category        `json:"category" example:"dining"`
	Description   string                 `json:"description" example:"Lunch"`
	Date          string                 `json:"date" example:"2024-03-05"`
	Type          models.TransactionType `json:"type" example:"expense"`
	AbsAmount     string                 `json:"absAmount" example:"12.50"`
	Sign          string                 `json:"sign" example:"-"`
	DisplayAmount string                 `json:"displayAmount" example:"-$12.50"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		Amount:        tx.Amount.StringFixed(2),
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date.Format(models.DateLayout),
		Type:          tx.Type,
		AbsAmount:     tx.FormattedAmount(),
		Sign:          tx.Sign(),
		DisplayAmount: tx.DisplayAmount(),
	}
}

func toTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = toTransactionResponse(&txs[i])
	}
	return out
}

// TransactionSummary is the short confirmation shown after saving.
type TransactionSummary struct {
	Type     models.TransactionType `json:"type" example:"expense"`
	Amount   float64                `json:"amount" example:"12.5"`
	Category models.Category        `json:"category" example:"dining"`
	Date     string                 `json:"date" example:"2024-03-05"`
}

// CreateTransactionResponse is returned when a transaction was saved.
type CreateTransactionResponse struct {
	Message     string              `json:"message" example:"Transaction saved successfully"`
	Transaction TransactionResponse `json:"transaction"`
	Summary     TransactionSummary  `json:"summary"`
}

// SearchResponse is one window of search results.
type SearchResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	SummaryStats services.SummaryStats `json:"summaryStats"`
	TotalCount   int64                 `json:"totalCount" example:"20"`
	HasMore      bool                  `json:"hasMore" example:"true"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense from a form submission. Expenses are stored negative.
// @Tags        transactions
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       amount      formData string true "Positive amount, e.g. 12.50"
// @Param       category    formData string true "One of the fixed categories (case-insensitive)"
// @Param       description formData string true "Free text"
// @Param       type        formData string true "expense or income"
// @Param       date        formData string true "Calendar date (YYYY-MM-DD)"
// @Success     201 {object} CreateTransactionResponse "Transaction saved"
// @Failure     400 {object} ErrorResponse "Validation failed or invalid reference"
// @Failure     409 {object} ErrorResponse "Transaction already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var form validator.TransactionForm
	if err := c.ShouldBind(&form); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := validator.ValidateForm(form)
	if !result.OK() {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrValidation, result.Errors))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), result.Insert)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateTransactionResponse{
		Message:     "Transaction saved successfully",
		Transaction: toTransactionResponse(transaction),
		Summary: TransactionSummary{
			Type:     transaction.Type,
			Amount:   transaction.AbsAmount().InexactFloat64(),
			Category: transaction.Category,
			Date:     transaction.Date.Format(models.DateLayout),
		},
	})
}

// ListTransactions handles listing transactions
// @Summary     List transactions
// @Description List transactions newest first. Filters by type or by an inclusive date range; without filters returns the newest up to limit.
// @Tags        transactions
// @Produce     json
// @Param       limit query int    false "Maximum number of transactions (1-100)"
// @Param       type  query string false "expense or income"
// @Param       start query string false "Range start (YYYY-MM-DD), requires end"
// @Param       end   query string false "Range end (YYYY-MM-DD), requires start"
// @Success     200 {object} map[string][]TransactionResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.LimitRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	start, hasStart, err := queryDate(c, "start")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, hasEnd, err := queryDate(c, "end")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	var transactions []models.Transaction
	switch {
	case hasStart != hasEnd:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "start and end must be given together"))
		return
	case hasStart:
		transactions, err = h.transactionService.GetTransactionsByDateRange(ctx, start, end)
	case c.Query("type") != "":
		transactions, err = h.transactionService.GetTransactionsByType(ctx, models.TransactionType(c.Query("type")))
	default:
		transactions, err = h.transactionService.GetAllTransactions(ctx, page.Limit)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": toTransactionResponses(transactions)})
}

// SearchTransactions handles transaction search
// @Summary     Search transactions
// @Description Case-insensitive search over description and category with category/type filters. Stats and count cover every match, not just the returned window.
// @Tags        transactions
// @Produce     json
// @Param       searchTerm query string false "Substring matched against description or category"
// @Param       category   query string false "Category filter, All disables it"
// @Param       type       query string false "Type filter, All disables it"
// @Param       limit      query int    false "Window size (default 8, max 100)"
// @Success     200 {object} SearchResponse "Search results"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/search [get]
func (h *TransactionHandler) SearchTransactions(c *gin.Context) {
	var page pagination.LimitRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.transactionService.SearchTransactions(c.Request.Context(), services.SearchFilter{
		SearchTerm: c.Query("searchTerm"),
		Category:   c.Query("category"),
		Type:       c.Query("type"),
		Limit:      page.Limit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Transactions: toTransactionResponses(result.Transactions),
		SummaryStats: result.SummaryStats,
		TotalCount:   result.TotalCount,
		HasMore:      result.HasMore,
	})
}

// GetSummaryStats handles summary statistics
// @Summary     Summary statistics
// @Description Total expenses, income, savings and count, optionally for one month. month and year must be given together.
// @Tags        transactions
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} services.SummaryStats "Summary stats"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/stats [get]
func (h *TransactionHandler) GetSummaryStats(c *gin.Context) {
	period, err := queryPeriod(c, false)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.transactionService.GetSummaryStats(c.Request.Context(), period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// queryPeriod reads month and year. When neither is set it returns nil, or
// the current month if fallbackToNow is true.
func queryPeriod(c *gin.Context, fallbackToNow bool) (*services.Period, error) {
	month, hasMonth, err := queryInt(c, "month")
	if err != nil {
		return nil, err
	}
	year, hasYear, err := queryInt(c, "year")
	if err != nil {
		return nil, err
	}

	switch {
	case hasMonth && hasYear:
		return &services.Period{Month: month, Year: year}, nil
	case hasMonth || hasYear:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year must be given together")
	case fallbackToNow:
		now := time.Now()
		return &services.Period{Month: int(now.Month()), Year: now.Year()}, nil
	default:
		return nil, nil
	}
}
