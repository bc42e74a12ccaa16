package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	domainerr "github.com/pennyledger/finance-tracker/internal/domain/error"
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/domain/port/usecase"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// exportFilename is the download name of the CSV attachment. The content is
// generated per request; the name is just what the browser saves it as.
const exportFilename = "transactions_export.csv"

// LedgerHandler handles dashboard, transaction, and export requests
type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// Dashboard handles GET /dashboard
func (h *LedgerHandler) Dashboard(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactions, balanceCents, err := h.ledgerUseCase.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load dashboard", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	views := make([]dto.TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, dto.NewTransactionView(t))
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"transactions": views,
		"balance":      entity.FormatCents(balanceCents),
		"flashes":      takeFlashes(c),
	})
}

// AddTransaction handles POST /dashboard
func (h *LedgerHandler) AddTransaction(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var form dto.TransactionForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "danger", "Invalid form submission")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	input := usecase.AddTransactionInput{
		Kind:       form.Type,
		Category:   form.Category,
		AmountText: form.Amount,
		Date:       form.Date,
		Account:    form.Account,
	}

	if _, err := h.ledgerUseCase.AddTransaction(c.Request.Context(), userID, input); err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Failed to add transaction", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		addFlash(c, "danger", domainerr.UserMessage(err))
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	addFlash(c, "success", "Transaction added")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Delete handles GET /delete/:id
func (h *LedgerHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	err = h.ledgerUseCase.DeleteTransaction(c.Request.Context(), userID, transactionID)
	switch {
	case err == nil:
		addFlash(c, "success", "Transaction deleted")
		c.Redirect(http.StatusFound, "/dashboard")
	case domainerr.IsNotFoundError(err):
		c.String(http.StatusNotFound, "Not Found")
	case domainerr.IsNotOwnerError(err):
		addFlash(c, "danger", "Unauthorized")
		c.Redirect(http.StatusFound, "/dashboard")
	default:
		h.logger.Error("Failed to delete transaction", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}

// Export handles GET /export, serving the caller's ledger as a CSV download.
// The CSV is built into a buffer before any header is written so a failed
// export returns a real error status instead of a 200 with a truncated body.
func (h *LedgerHandler) Export(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var buf bytes.Buffer
	if _, err := h.ledgerUseCase.ExportCSV(c.Request.Context(), userID, &buf); err != nil {
		h.logger.Error("Failed to export transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
