package http

import (
	"net/http"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID stores a child logger carrying the request's trace ID in the
// context. The ID comes from the X-Trace-ID header or is generated, and is
// echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		r = r.WithContext(h.logger.WithTraceID(traceID).WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
