package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tokencore/indexer"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, indexer.AutoMigrate(db))
	return db
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	db := openTestDB(t)
	calls := 0
	handler := Idempotency(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/transfer", nil)
	req.Header.Set("Idempotency-Key", "abc-123")

	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, req)
	require.Equal(t, http.StatusCreated, rec1.Code)
	require.Equal(t, "ok", rec1.Body.String())
	require.Equal(t, 1, calls)

	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusCreated, rec2.Code)
	require.Equal(t, "ok", rec2.Body.String())
	require.Equal(t, "true", rec2.Header().Get("Idempotency-Replayed"))
	require.Equal(t, 1, calls, "handler should not be invoked again for a replayed key")
}

func TestIdempotencyPassesThroughWithoutKey(t *testing.T) {
	db := openTestDB(t)
	calls := 0
	handler := Idempotency(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/transfer", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, 2, calls)
}
