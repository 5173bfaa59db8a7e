package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/mock"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/validators"
	"github.com/MKhiriev/movie-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// newTestValidatedUserSvc wires the validation wrapper around a real user
// service backed by a mock repository, the same way NewServices does.
func newTestValidatedUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserValidationService().Wrap(NewUserService(repo, testAppConfig, logger.Nop())), repo
}

func TestUserValidationService_Register_Violations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestValidatedUserSvc(t, ctrl)
	repo.EXPECT().ExistsByUsername(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RegisterUser(context.Background(), models.UserRequest{Username: "bob", Email: "x"})

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

// TestUserValidationService_Update_PermissionBeforeValidation checks that a
// foreign username is rejected even when the body is invalid too.
func TestUserValidationService_Update_PermissionBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestValidatedUserSvc(t, ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(context.Background(), models.User{Username: "mallory"}, "alice1", models.UserRequest{Username: "a!"})

	assert.ErrorIs(t, err, ErrPermissionDenied)
	var verrs validators.ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}

func TestUserValidationService_Update_OwnerInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestValidatedUserSvc(t, ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(context.Background(), models.User{Username: "alice1"}, "alice1", models.UserRequest{Username: "a!", Email: "bad"})

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
}

func TestUserValidationService_Update_ValidBodyForeignUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestValidatedUserSvc(t, ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(context.Background(), models.User{Username: "mallory"}, "alice1", aliceRequest())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserValidationService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestValidatedUserSvc(t, ctrl)
	ctx := context.Background()
	movieID := primitive.NewObjectID()

	repo.EXPECT().FindByUsername(ctx, "alice1").Return(models.User{Username: "alice1"}, nil)
	repo.EXPECT().AddFavorite(ctx, "alice1", movieID).Return(models.User{Username: "alice1"}, nil)
	repo.EXPECT().RemoveFavorite(ctx, "alice1", movieID).Return(models.User{Username: "alice1"}, nil)
	repo.EXPECT().Delete(ctx, "alice1").Return(nil, nil)

	_, err := svc.GetUser(ctx, "alice1")
	require.NoError(t, err)
	_, err = svc.AddFavorite(ctx, "alice1", movieID.Hex())
	require.NoError(t, err)
	_, err = svc.RemoveFavorite(ctx, "alice1", movieID.Hex())
	require.NoError(t, err)
	_, err = svc.DeleteUser(ctx, "alice1")
	require.NoError(t, err)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := NewServices(&store.Storages{
		MovieRepository: mock.NewMockMovieRepository(ctrl),
		UserRepository:  mock.NewMockUserRepository(ctrl),
	}, testAppConfig, logger.Nop())

	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.MovieService)
	assert.IsType(t, &UserValidationService{}, services.UserService)
}
