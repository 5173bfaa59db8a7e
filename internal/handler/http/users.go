package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/movie-api/internal/app"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/utils"
	"github.com/MKhiriev/movie-api/internal/validators"
	"github.com/MKhiriev/movie-api/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UserRequest
	if err := decodeLenientJSON(r, &req); err != nil {
		log.Info().Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.RegisterUser(r.Context(), req)
	if err != nil {
		userError(w, r, err, req.Username)
		return
	}

	writeJSON(w, r, user.Public(), http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")

	user, err := h.services.UserService.GetUser(r.Context(), username)
	if err != nil {
		userError(w, r, err, username)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

// updateUser replaces the profile fields of the path user. Only the
// authenticated user itself may do that.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	username := pathParam(r, "username")

	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		log.Error().Err(ErrNoIdentity).Send()
		http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	var req models.UserRequest
	if err := decodeLenientJSON(r, &req); err != nil {
		log.Info().Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), *identity, username, req)
	if err != nil {
		// a taken username can only be the rename target
		userError(w, r, err, req.Username)
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

// deleteUser answers 200 even when no account matched; the user field of
// the body is null then.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")

	deleted, err := h.services.UserService.DeleteUser(r.Context(), username)
	if err != nil {
		internalError(w, r, err, "error deleting user")
		return
	}

	writeJSON(w, r, models.UserDeletedResponse{Message: app.MsgUserDeleted, User: deleted}, http.StatusOK)
}

// userError answers an error returned by the user service.
func userError(w http.ResponseWriter, r *http.Request, err error, username string) {
	log := logger.FromRequest(r)

	var verrs validators.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.Info().Err(err).Msg("field rules violated")
		writeJSON(w, r, models.ValidationErrorResponse{Errors: verrs}, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrUsernameTaken):
		log.Info().Str("username", username).Msg("username taken")
		http.Error(w, fmt.Sprintf(app.MsgUserAlreadyExists, username), http.StatusBadRequest)
	case errors.Is(err, service.ErrPermissionDenied):
		http.Error(w, app.MsgPermissionDenied, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidMovieID):
		log.Info().Err(err).Send()
		http.Error(w, app.MsgInvalidMovieID, http.StatusBadRequest)
	case errors.Is(err, store.ErrUserNotFound):
		http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
	default:
		internalError(w, r, err, "error occurred in user service")
	}
}
