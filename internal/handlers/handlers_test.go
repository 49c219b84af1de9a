package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"herald/internal/adcopy"
	"herald/internal/promokit"
	"herald/internal/seo"
	"herald/pkg/ctxkeys"
	"herald/pkg/llm"
	"herald/pkg/logging"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestHandlers builds handlers backed by sqlmock and demo-mode
// generators. Pass a provider to exercise live-mode paths.
func newTestHandlers(t *testing.T, provider llm.Provider) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logging.NewLogger()
	h := New(db, logger, NewMetrics(nil), []byte("test-secret"),
		adcopy.NewGenerator(provider, logger),
		promokit.NewGenerator(provider, logger),
		seo.NewOptimizer(provider, logger))
	return h, mock
}

// authAs fakes the JWT middleware for route tests.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(ctxkeys.KeyUserID), userID)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
