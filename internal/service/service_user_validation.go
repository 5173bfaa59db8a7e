package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-api/internal/validators"
	"github.com/MKhiriev/movie-api/models"
)

// UserValidationService checks the field rules of registration and update
// bodies before delegating to the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registration: %w", err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *UserValidationService) GetUser(ctx context.Context, username string) (models.User, error) {
	return v.inner.GetUser(ctx, username)
}

// UpdateUser rejects a foreign identity before looking at the body, so the
// caller gets ErrPermissionDenied whatever the payload holds.
func (v *UserValidationService) UpdateUser(ctx context.Context, identity models.User, username string, req models.UserRequest) (models.User, error) {
	if err := checkOwnership(ctx, identity, username); err != nil {
		return models.User{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before update: %w", err)
	}

	return v.inner.UpdateUser(ctx, identity, username, req)
}

func (v *UserValidationService) AddFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return v.inner.AddFavorite(ctx, username, movieID)
}

func (v *UserValidationService) RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	return v.inner.RemoveFavorite(ctx, username, movieID)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, username string) (*models.User, error) {
	return v.inner.DeleteUser(ctx, username)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
