package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/utils"
	"github.com/MKhiriev/movie-api/internal/validators"
	"github.com/MKhiriev/movie-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored by the
// UserRepository and manages the JWT token lifecycle.
type authService struct {
	// userRepository is used to look up users by name at login and by ID
	// when a token is presented.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// validator checks that both credentials are present.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongCredentials if no such user exists or the password does not
//     match the stored hash.
//   - A wrapped storage error if the lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Info().Err(err).Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", req.Username).Msg("login for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.Password, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("username", req.Username).Msg("wrong password")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("password check failed")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads the user named by its subject.
// A token whose user no longer exists is rejected like an invalid token.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Info().Str("user_id", token.UserID.Hex()).Msg("token subject no longer exists")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading token subject: %w", err)
	}

	return user, nil
}
