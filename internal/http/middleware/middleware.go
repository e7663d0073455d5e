package middleware

import (
	"context"
	"net/http"
	"time"

	"schoolops/internal/core/domain/logging"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a uuid and echoes it back in the response
// headers so support tickets can be matched to log lines.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		rw.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(rw, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps the SSE stream working behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func AccessLog(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			log.Info(
				r.Context(),
				"Request handled.",
				logging.Entry("requestID", GetRequestID(r.Context())),
				logging.Entry("method", r.Method),
				logging.Entry("path", r.URL.Path),
				logging.Entry("status", recorder.status),
				logging.Entry("duration", time.Since(started).String()),
			)
		})
	}
}
