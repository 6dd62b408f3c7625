package logger

import (
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := WithValue(r.Context(), "method", r.Method)
		ctx = WithValue(ctx, "remote", r.RemoteAddr)
		ctx = WithValue(ctx, "agent", r.UserAgent())
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))
		ctx = WithValue(ctx, "status", rec.status)
		ctx = WithValue(ctx, "duration", time.Since(start))
		Infof(ctx, "%s", r.URL)
	})
}
