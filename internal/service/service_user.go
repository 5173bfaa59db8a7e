package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/utils"
	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService is the concrete implementation of UserService. Field rules
// are enforced by the validation wrapper, not here.
type userService struct {
	userRepository store.UserRepository

	// hashCost is the bcrypt cost used for new and changed passwords.
	hashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser creates an account after checking that the username is free.
// The password is stored as a bcrypt hash.
//
// Returns ErrUsernameTaken when the username is already in use.
func (s *userService) RegisterUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		log.Info().Str("username", req.Username).Msg("username already exists")
		return models.User{}, fmt.Errorf("%w: %s", ErrUsernameTaken, req.Username)
	}

	user := req.User()
	if user.Password, err = utils.HashPassword(req.Password, s.hashCost); err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID.Hex()).Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user %q: %w", username, err)
	}
	return user, nil
}

// UpdateUser overwrites the profile of username. Only the user itself may do
// so; any other identity gets ErrPermissionDenied and nothing is written.
// Renaming onto a username that is already in use gives ErrUsernameTaken.
func (s *userService) UpdateUser(ctx context.Context, identity models.User, username string, req models.UserRequest) (models.User, error) {
	if err := checkOwnership(ctx, identity, username); err != nil {
		return models.User{}, err
	}

	// a rename must not land on another account's username
	if req.Username != username {
		exists, err := s.userRepository.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return models.User{}, fmt.Errorf("error checking username: %w", err)
		}
		if exists {
			logger.FromContext(ctx).Info().Str("username", req.Username).Msg("rename target already exists")
			return models.User{}, fmt.Errorf("%w: %s", ErrUsernameTaken, req.Username)
		}
	}

	user := req.User()
	hashed, err := utils.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = hashed

	updated, err := s.userRepository.Update(ctx, username, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user %q: %w", username, err)
	}

	return updated, nil
}

// AddFavorite adds movieID to the user's favorites. Adding a movie twice
// keeps a single entry.
func (s *userService) AddFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.AddFavorite(ctx, username, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error adding favorite for %q: %w", username, err)
	}
	return user, nil
}

// RemoveFavorite removes movieID from the user's favorites. Removing an absent
// movie is a no-op.
func (s *userService) RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.RemoveFavorite(ctx, username, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error removing favorite for %q: %w", username, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) (*models.User, error) {
	deleted, err := s.userRepository.Delete(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error deleting user %q: %w", username, err)
	}

	if deleted != nil {
		logger.FromContext(ctx).Info().Str("username", username).Msg("user deleted")
	}
	return deleted, nil
}

// checkOwnership rejects identity acting on a profile other than its own.
func checkOwnership(ctx context.Context, identity models.User, username string) error {
	if identity.Username != username {
		logger.FromContext(ctx).Warn().Str("identity", identity.Username).Str("target", username).Msg("permission denied")
		return ErrPermissionDenied
	}
	return nil
}

func parseMovieID(movieID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidMovieID, movieID)
	}
	return id, nil
}
