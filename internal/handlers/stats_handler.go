package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/services"
	"duitku/internal/stats"
)

// StatsHandler serves the aggregated dashboard views: totals, monthly
// series, and category breakdowns.
type StatsHandler struct {
	transactionService services.TransactionServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(transactionService services.TransactionServicer) *StatsHandler {
	return &StatsHandler{transactionService: transactionService}
}

// MonthBucketResponse represents one month in the monthly series.
type MonthBucketResponse struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// CategoryTotalResponse represents one category's summed amount.
type CategoryTotalResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Amount int64  `json:"amount"`
}

// GetSummary returns overall income, expense, and balance totals
// @Summary     Get financial summary
// @Description Get income total, expense total, and balance over the user's transactions
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} stats.Summary "Totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store not ready"
// @Router      /stats/summary [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMonthlySeries returns per-month income and expense sums
// @Summary     Get monthly series
// @Description Get income and expense sums for each of the trailing 3, 6, or 12 calendar months
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "Time range (recent-3, recent-6, recent-12)" default(recent-6)
// @Success     200 {array} MonthBucketResponse "Monthly buckets, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store not ready"
// @Router      /stats/monthly [get]
func (h *StatsHandler) GetMonthlySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	timeRange := stats.TimeRange(c.DefaultQuery("range", string(stats.RangeRecent6)))
	if !timeRange.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid range, must be recent-3, recent-6, or recent-12"))
		return
	}

	series, err := h.transactionService.GetMonthlySeries(userID, time.Now(), timeRange)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets := make([]MonthBucketResponse, 0, len(series))
	for _, b := range series {
		buckets = append(buckets, MonthBucketResponse{
			Month:   b.Month.Format("2006-01"),
			Income:  b.Income,
			Expense: b.Expense,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"range":  timeRange,
		"series": buckets,
	})
}

// GetCategoryBreakdown returns per-category sums for one transaction type
// @Summary     Get category breakdown
// @Description Get summed amounts per category for income or expense transactions. Categories with a zero total are omitted.
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       type query string true "Transaction type (income or expense)"
// @Success     200 {array} CategoryTotalResponse "Category totals in catalog order"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Store not ready"
// @Router      /stats/categories [get]
func (h *StatsHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType := models.TransactionType(c.Query("type"))
	if !txType.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
		return
	}

	breakdown, err := h.transactionService.GetCategoryBreakdown(userID, txType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals := make([]CategoryTotalResponse, 0, len(breakdown))
	for _, ct := range breakdown {
		totals = append(totals, CategoryTotalResponse{
			ID:     ct.Category.ID,
			Label:  ct.Category.Label,
			Icon:   ct.Category.Icon,
			Amount: ct.Amount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"type":       txType,
		"categories": totals,
	})
}
