package http

import (
	"net/http"
)

// addFavorite is idempotent: the store adds the movie ID only when it is
// not in the list yet.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")
	movieID := pathParam(r, "movieID")

	user, err := h.services.UserService.AddFavorite(r.Context(), username, movieID)
	if err != nil {
		userError(w, r, err, username)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

// removeFavorite succeeds when the movie ID was not in the list.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")
	movieID := pathParam(r, "movieID")

	user, err := h.services.UserService.RemoveFavorite(r.Context(), username, movieID)
	if err != nil {
		userError(w, r, err, username)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
