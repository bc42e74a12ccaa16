package handler

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
	"github.com/pennyledger/finance-tracker/internal/domain/port/usecase"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// protectedRouter wires the handler behind RequireAuth the way production
// routes are registered.
func protectedRouter(ledgerUseCase *mockLedgerUseCase) *gin.Engine {
	router := newSessionRouter()
	handler := NewLedgerHandler(ledgerUseCase, testLogger)

	authorized := router.Group("/", middleware.RequireAuth(testLogger))
	authorized.POST("/dashboard", handler.AddTransaction)
	authorized.GET("/delete/:id", handler.Delete)
	authorized.GET("/export", handler.Export)

	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("should redirect unauthenticated requests to login", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		router := protectedRouter(ledgerUseCase)

		recorder := performForm(router, http.MethodGet, "/export", nil, nil)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/login", recorder.Header().Get("Location"))
		ledgerUseCase.AssertNotCalled(t, "ExportCSV")
	})
}

func TestLedgerHandler_AddTransaction(t *testing.T) {
	t.Run("should pass form values through and redirect", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("AddTransaction", mock.Anything, uint64(1), usecase.AddTransactionInput{
			Kind:       "income",
			Category:   "Salary",
			AmountText: "2,500",
			Date:       "2024-03-01",
			Account:    "Checking",
		}).Return(&entity.Transaction{ID: 1, UserID: 1}, nil)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		form := url.Values{
			"type":     {"income"},
			"category": {"Salary"},
			"amount":   {"2,500"},
			"date":     {"2024-03-01"},
			"account":  {"Checking"},
		}
		recorder := performForm(router, http.MethodPost, "/dashboard", form, cookies)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
		ledgerUseCase.AssertExpectations(t)
	})

	t.Run("should redirect with flash on invalid amount", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("AddTransaction", mock.Anything, uint64(1), mock.Anything).
			Return(nil, errs.ErrInvalidAmount)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		form := url.Values{"type": {"income"}, "amount": {"abc"}}
		recorder := performForm(router, http.MethodPost, "/dashboard", form, cookies)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
	})
}

func TestLedgerHandler_Delete(t *testing.T) {
	t.Run("should delete and redirect to dashboard", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("DeleteTransaction", mock.Anything, uint64(1), uint64(7)).Return(nil)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/delete/7", nil, cookies)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
	})

	t.Run("should return 404 for unknown transaction", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("DeleteTransaction", mock.Anything, uint64(1), uint64(99)).
			Return(errs.ErrTransactionNotFound)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/delete/99", nil, cookies)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("should return 404 for a non-numeric id", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/delete/abc", nil, cookies)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		ledgerUseCase.AssertNotCalled(t, "DeleteTransaction")
	})

	t.Run("should redirect with flash when transaction is not owned", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("DeleteTransaction", mock.Anything, uint64(1), uint64(7)).
			Return(errs.NewLedgerError("delete", 1, 7, errs.ErrNotOwner))

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/delete/7", nil, cookies)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
	})
}

func TestLedgerHandler_Export(t *testing.T) {
	t.Run("should stream CSV with download headers", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("ExportCSV", mock.Anything, uint64(1), mock.Anything).
			Run(func(args mock.Arguments) {
				w := args.Get(2).(io.Writer)
				w.Write([]byte("Type,Category,Amount,Date,Account\nincome,Salary,2500.00,2024-03-01,Checking\n"))
			}).
			Return(1, nil)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/export", nil, cookies)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="transactions_export.csv"`, recorder.Header().Get("Content-Disposition"))
		assert.Contains(t, recorder.Body.String(), "income,Salary,2500.00")
	})

	t.Run("should return 500 without download headers when export fails", func(t *testing.T) {
		ledgerUseCase := new(mockLedgerUseCase)
		ledgerUseCase.On("ExportCSV", mock.Anything, uint64(1), mock.Anything).
			Return(0, errs.ErrDatabaseConnection)

		router := protectedRouter(ledgerUseCase)
		cookies := loginCookies(t, router)

		recorder := performForm(router, http.MethodGet, "/export", nil, cookies)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Content-Disposition"))
		assert.NotContains(t, recorder.Body.String(), "Type,Category")
	})
}
