package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/movie-api/internal/app"
)

// withRecover is the global error handler: a panic raised anywhere below it
// is logged with its stack and answered with 500 "Something went wrong!",
// unless the handler had already started the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			http.Error(rw, app.MsgSomethingWentWrong, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
