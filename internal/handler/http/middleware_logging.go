package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request and feeds the same
// observation to the metrics registry. A panicking request is recorded as 500
// and the panic is passed on to withRecover.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			rec := recover()

			duration := time.Since(start)
			status := lw.status
			switch {
			case rec != nil && !lw.wroteHeader:
				// withRecover answers with 500 once the panic reaches it.
				status = http.StatusInternalServerError
			case status == 0:
				status = http.StatusOK
			}

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", status).
				Dur("duration", duration).
				Int("size", lw.size).
				Send()

			if h.metrics != nil {
				var route string
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					route = rctx.RoutePattern()
				}
				h.metrics.ObserveRequest(method, route, status, duration)
			}

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}
