// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/movie-api/models"
)

// ServerAdapter defines typed access to the movie API. Implementations are
// responsible for serialisation, authentication header management, and
// mapping HTTP statuses to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account. The server answers the public view of
	// the account, without the ID or favorites.
	Register(ctx context.Context, req models.UserRequest) (models.UserCreatedResponse, error)

	// Login authenticates the user and stores the returned bearer token via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Movies lists the whole catalog. Requires a token.
	Movies(ctx context.Context) ([]models.Movie, error)

	// Movie fetches a single movie by its exact title.
	Movie(ctx context.Context, title string) (models.Movie, error)

	// User fetches an account by username. Requires a token.
	User(ctx context.Context, username string) (models.User, error)

	// UpdateUser replaces the account fields of username. Requires the
	// token of the same user.
	UpdateUser(ctx context.Context, username string, req models.UserRequest) (models.User, error)

	// DeleteUser removes the account and returns the deleted record.
	DeleteUser(ctx context.Context, username string) (models.UserDeletedResponse, error)

	// AddFavorite adds movieID to the favorites of username and returns the
	// updated account. Requires a token.
	AddFavorite(ctx context.Context, username, movieID string) (models.User, error)

	// RemoveFavorite removes movieID from the favorites of username and
	// returns the updated account.
	RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error)
}
