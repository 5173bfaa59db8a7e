package service

import (
	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/store"
)

type Services struct {
	AuthService  AuthService
	MovieService MovieService
	UserService  UserService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		MovieService: NewMovieService(storages.MovieRepository, logger),
		UserService:  NewUserValidationService().Wrap(NewUserService(storages.UserRepository, cfg, logger)),
	}
}
