package service

import (
	"context"

	"github.com/MKhiriev/movie-api/models"
)

// AuthService verifies credentials and issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses tokenString and loads the user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// MovieService serves the read-mostly movie catalog.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, title string) (models.Movie, error)
	GetGenre(ctx context.Context, name string) (models.Genre, error)
	GetDirector(ctx context.Context, name string) (models.Director, error)
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
}

// UserService manages accounts and their favorite movies.
type UserService interface {
	RegisterUser(ctx context.Context, req models.UserRequest) (models.User, error)
	GetUser(ctx context.Context, username string) (models.User, error)
	// UpdateUser overwrites the profile of username on behalf of identity.
	UpdateUser(ctx context.Context, identity models.User, username string, req models.UserRequest) (models.User, error)
	AddFavorite(ctx context.Context, username, movieID string) (models.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error)
	// DeleteUser returns the deleted user, or nil when none matched.
	DeleteUser(ctx context.Context, username string) (*models.User, error)
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
