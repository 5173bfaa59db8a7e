// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/movie-api/internal/app"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/models"
)

// login verifies a username/password pair and answers the user together
// with a fresh bearer token. The token is also set in the Authorization
// response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeLenientJSON(r, &req); err != nil {
		log.Info().Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Info().Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, service.ErrWrongCredentials):
			log.Info().Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
		default:
			internalError(w, r, err, "unexpected error occurred during user login")
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		internalError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Str("user_id", user.ID.Hex()).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.LoginResponse{User: user, Token: token.SignedString}, http.StatusOK)
}
