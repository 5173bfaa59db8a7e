package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-api/internal/app"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the "Authorization" header, extracts the bearer token, resolves it
// to a user via [service.AuthService.Authenticate] and stores that user in
// the request context with [utils.WithIdentity] before delegating to the
// next handler.
//
// Requests are rejected with 401 Unauthorized when the header is absent or
// malformed, and when the token is invalid, expired or names a user that no
// longer exists. A store failure while loading the user is answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Info().Err(err).Msg("token rejected")
				http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during authentication")
				http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			}
			return
		}

		ctx = utils.WithIdentity(ctx, &identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
