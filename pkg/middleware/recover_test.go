package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRecover_TurnsPanicIntoInternalError(t *testing.T) {
	h := middleware.Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("mediator: no handler registered")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"InternalError","message":"Internal server error"}`, rec.Body.String())
}
