package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/movie-api/internal/app"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/go-chi/cors"
)

const anyOrigin = "*"

// withCORS builds the origin gate. Requests without an Origin header always
// pass. An Origin outside the allow-list is refused with 403 and no CORS
// headers; allowed origins get their headers, and preflight answers, from
// go-chi/cors.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	allowed := h.cfg.AllowedOrigins

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return func(next http.Handler) http.Handler {
		withHeaders := corsHandler(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || originAllowed(allowed, origin) {
				withHeaders.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Warn().Str("origin", origin).Msg("origin rejected by CORS policy")
			http.Error(w, fmt.Sprintf(app.MsgCORSOriginNotAllowed, origin), http.StatusForbidden)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	return slices.Contains(allowed, anyOrigin) || slices.Contains(allowed, origin)
}
