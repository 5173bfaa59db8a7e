package http

import (
	"net/http"

	"github.com/MKhiriev/movie-api/internal/app"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeText(w, app.MsgWelcome, http.StatusOK)
}
