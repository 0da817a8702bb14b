package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/metrics"
)

type requestIDKey struct{}

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// RequestLogger wraps handlers with request logging, request ID support and
// HTTP metrics.
func RequestLogger(baseLogger *slog.Logger, recorder *metrics.Recorder) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := sanitizeRequestID(r.Header.Get("X-Request-ID"))
			w.Header().Set("X-Request-ID", reqID)

			logger := baseLogger.With(
				slog.String(logging.FieldRequestID, reqID),
				slog.String(logging.FieldMethod, r.Method),
				slog.String(logging.FieldPath, r.URL.Path),
			)

			ctx := logging.WithLogger(r.Context(), logger)
			ctx = withRequestID(ctx, reqID)
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r.WithContext(ctx))

			duration := time.Since(start)
			if recorder != nil {
				recorder.RecordHTTPRequest(r.Method, r.URL.Path, ww.status, duration)
			}
			logger.Info("request complete",
				slog.Int(logging.FieldStatusCode, ww.status),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RequestIDFromContext extracts the request ID stored by RequestLogger.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func sanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return generateRequestID()
}

func generateRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(b[:])
}
