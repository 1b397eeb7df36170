package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"duitku/internal/catalog"
	apperrors "duitku/internal/errors"
	"duitku/internal/models"
)

// CategoryHandler serves the static category catalogs.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the category catalog
// @Summary     List categories
// @Description List the fixed category catalog, optionally restricted to one transaction type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Transaction type (income or expense)"
// @Success     200 {array} catalog.Category "Catalog entries in display order"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	typeParam := c.Query("type")
	if typeParam == "" {
		c.JSON(http.StatusOK, gin.H{
			"expense": catalog.ExpenseCategories,
			"income":  catalog.IncomeCategories,
		})
		return
	}

	txType := models.TransactionType(typeParam)
	if !txType.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": catalog.ForType(txType)})
}
