package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-api/internal/app"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.ListMovies(r.Context())
	if err != nil {
		internalError(w, r, err, "error listing movies")
		return
	}

	if movies == nil {
		movies = []models.Movie{}
	}
	writeJSON(w, r, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")

	movie, err := h.services.MovieService.GetMovie(r.Context(), title)
	if err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			logger.FromRequest(r).Debug().Str("title", title).Msg("movie not found")
			http.Error(w, app.MsgMovieNotFound, http.StatusNotFound)
		default:
			internalError(w, r, err, "error finding movie")
		}
		return
	}

	writeJSON(w, r, movie, http.StatusOK)
}

func (h *Handler) getGenre(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	genre, err := h.services.MovieService.GetGenre(r.Context(), name)
	if err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			http.Error(w, app.MsgGenreNotFound, http.StatusNotFound)
		default:
			internalError(w, r, err, "error finding genre")
		}
		return
	}

	writeJSON(w, r, genre, http.StatusOK)
}

func (h *Handler) getDirector(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	director, err := h.services.MovieService.GetDirector(r.Context(), name)
	if err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			http.Error(w, app.MsgDirectorNotFound, http.StatusNotFound)
		default:
			internalError(w, r, err, "error finding director")
		}
		return
	}

	writeJSON(w, r, director, http.StatusOK)
}

// createMovie answers every failure with a JSON error body and 400, store
// failures included.
func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var movie models.Movie
	if err := decodeJSON(r, &movie); err != nil {
		log.Info().Err(err).Msg(app.MsgInvalidJSON)
		writeJSON(w, r, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	created, err := h.services.MovieService.CreateMovie(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Info().Err(err).Msg("movie rejected")
			writeJSON(w, r, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		default:
			log.Err(err).Msg("error creating movie")
			writeJSON(w, r, models.ErrorResponse{Error: app.MsgMovieNotCreated}, http.StatusBadRequest)
		}
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}
