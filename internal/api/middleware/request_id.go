package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID проставляет идентификатор запроса: берет из заголовка X-Request-ID
// или генерирует новый UUID. Идентификатор возвращается в ответе
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// Logging пишет в лог строку на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			id, _ := GetRequestID(r.Context())
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, time.Since(start), id)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, time.Since(start), id)
			default:
				logger.Info("%s %s - status=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, rec.status, time.Since(start), id)
			}
		})
	}
}
