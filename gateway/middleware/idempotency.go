package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokencore/indexer"
)

// Idempotency replays a cached response for any mutating request that
// carries an Idempotency-Key header already seen, and records fresh
// responses under that key otherwise, backed by the indexer's *gorm.DB.
func Idempotency(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
			if key == "" || db == nil {
				next.ServeHTTP(w, r)
				return
			}

			var cached indexer.IdempotencyKey
			if err := db.First(&cached, "key = ?", key).Error; err == nil {
				w.Header().Set("Idempotency-Replayed", "true")
				w.WriteHeader(cached.Status)
				_, _ = w.Write([]byte(cached.Response))
				return
			}

			recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			record := indexer.IdempotencyKey{
				Key:       key,
				RequestID: uuid.NewString(),
				Method:    r.Method,
				Path:      r.URL.Path,
				Status:    recorder.status,
				Response:  recorder.buf.String(),
				CreatedAt: time.Now(),
			}
			db.Create(&record)
		})
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}
