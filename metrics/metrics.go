package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var RequestCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portfolio_http_requests_total",
		Help: "Total number of HTTP requests per path and status",
	}, []string{"path", "status"},
)

func init() {
	prometheus.MustRegister(RequestCounter)
}

// Middleware counts every request once the handler has written its status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		RequestCounter.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}
