package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var log = zap.NewNop().Sugar()

// SetLogger передаёт логгер в middleware. Вызывается из main.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		log = l
	}
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// WithLogging логирует метод, путь, статус, размер и длительность запроса.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rd := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(lw, r)

		log.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}
