package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	"github.com/pennyledger/finance-tracker/internal/domain/port/usecase"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/middleware"
	applogger "github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/logger"
)

// mockAuthUseCase is a testify mock for the AuthUseCase port
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	args := m.Called(ctx, username, password)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	args := m.Called(ctx, username, password)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockLedgerUseCase is a testify mock for the LedgerUseCase port
type mockLedgerUseCase struct {
	mock.Mock
}

func (m *mockLedgerUseCase) ListTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, int64, error) {
	args := m.Called(ctx, userID)
	if transactions := args.Get(0); transactions != nil {
		return transactions.([]*entity.Transaction), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockLedgerUseCase) AddTransaction(ctx context.Context, userID uint64, input usecase.AddTransactionInput) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, input)
	if transaction := args.Get(0); transaction != nil {
		return transaction.(*entity.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerUseCase) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *mockLedgerUseCase) ExportCSV(ctx context.Context, userID uint64, w io.Writer) (int, error) {
	args := m.Called(ctx, userID, w)
	return args.Int(0), args.Error(1)
}

// newSessionRouter builds a bare router with the cookie session middleware
// registered, mirroring the production middleware order. A helper login
// route lets tests obtain an authenticated session cookie.
func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("ft_session", store))

	router.GET("/testsession", func(c *gin.Context) {
		_ = middleware.SetSessionUser(c, 1)
		c.Status(http.StatusOK)
	})

	return router
}

// loginCookies performs the helper login request and returns the session
// cookies for subsequent authenticated requests.
func loginCookies(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/testsession", nil)
	router.ServeHTTP(recorder, request)

	return recorder.Result().Cookies()
}

func performForm(router *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	request := httptest.NewRequest(method, path, body)
	if form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		request.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

var testLogger = applogger.NewNoopLogger()
