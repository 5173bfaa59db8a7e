package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidMovieID:          http.StatusBadRequest,
	service.ErrUsernameTaken:           http.StatusBadRequest,
	service.ErrPermissionDenied:        http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrMovieNotFound: http.StatusNotFound,
	store.ErrUserNotFound:  http.StatusNotFound,

	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrInsertingDocument: http.StatusInternalServerError,
	store.ErrUpdatingDocument:  http.StatusInternalServerError,
}

// statusFromError maps err to the status it is answered with. Field rule
// violations take precedence over every sentinel.
func statusFromError(err error) int {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
