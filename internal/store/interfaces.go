package store

import (
	"context"

	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MovieRepository provides access to the "movies" collection.
type MovieRepository interface {
	// FindAll returns every movie. An empty collection yields an empty,
	// non-nil slice.
	FindAll(ctx context.Context) ([]models.Movie, error)
	// FindByTitle returns the movie whose Title equals title exactly.
	FindByTitle(ctx context.Context, title string) (models.Movie, error)
	// FindByGenreName returns the first movie whose Genre.Name equals name.
	FindByGenreName(ctx context.Context, name string) (models.Movie, error)
	// FindByDirectorName returns the first movie whose Director.Name equals name.
	FindByDirectorName(ctx context.Context, name string) (models.Movie, error)
	// Create inserts movie and returns it with the assigned ID.
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
}

// UserRepository provides access to the "users" collection. Methods that
// modify a user return the document as it is after the modification.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	// ExistsByUsername reports whether any user carries username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update overwrites the profile fields of the user named username with a
	// single $set. A nil Birthday leaves the stored birthday untouched.
	Update(ctx context.Context, username string, user models.User) (models.User, error)
	// AddFavorite adds movieID to favoriteMovies with $addToSet.
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (models.User, error)
	// RemoveFavorite removes movieID from favoriteMovies with $pull.
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (models.User, error)
	// Delete removes the user and returns the deleted document, or nil when
	// no user matched.
	Delete(ctx context.Context, username string) (*models.User, error)
}
