package store

import "github.com/MKhiriev/movie-api/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	MovieRepository MovieRepository
	UserRepository  UserRepository
}

// NewStorages builds the repositories on top of an open database.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		MovieRepository: NewMovieRepository(db, logger),
		UserRepository:  NewUserRepository(db, logger),
	}
}
