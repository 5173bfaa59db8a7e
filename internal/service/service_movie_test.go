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

func newTestMovieSvc(t *testing.T, ctrl *gomock.Controller) (MovieService, *mock.MockMovieRepository) {
	t.Helper()
	repo := mock.NewMockMovieRepository(ctrl)
	return NewMovieService(repo, logger.Nop()), repo
}

var inception = models.Movie{
	ID:       primitive.NewObjectID(),
	Title:    "Inception",
	Genre:    models.Genre{Name: "Thriller", Description: "Suspense."},
	Director: models.Director{Name: "Christopher Nolan", Birth: 1970},
	Featured: true,
}

func TestMovieService_ListMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestMovieSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return([]models.Movie{inception}, nil)

	movies, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Movie{inception}, movies)
}

func TestMovieService_GetMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestMovieSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByTitle(ctx, "Inception").Return(inception, nil)
	repo.EXPECT().FindByTitle(ctx, "inception").Return(models.Movie{}, store.ErrMovieNotFound)

	movie, err := svc.GetMovie(ctx, "Inception")
	require.NoError(t, err)
	assert.Equal(t, inception, movie)

	_, err = svc.GetMovie(ctx, "inception")
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestMovieService_GetGenreAndDirector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestMovieSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByGenreName(ctx, "Thriller").Return(inception, nil)
	repo.EXPECT().FindByDirectorName(ctx, "Christopher Nolan").Return(inception, nil)
	repo.EXPECT().FindByDirectorName(ctx, "Nobody").Return(models.Movie{}, store.ErrMovieNotFound)

	genre, err := svc.GetGenre(ctx, "Thriller")
	require.NoError(t, err)
	assert.Equal(t, inception.Genre, genre)

	director, err := svc.GetDirector(ctx, "Christopher Nolan")
	require.NoError(t, err)
	assert.Equal(t, inception.Director, director)

	_, err = svc.GetDirector(ctx, "Nobody")
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestMovieSvc(t, ctrl)
	ctx := context.Background()

	t.Run("client id is discarded", func(t *testing.T) {
		in := inception
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m models.Movie) (models.Movie, error) {
				assert.True(t, m.ID.IsZero())
				m.ID = primitive.NewObjectID()
				return m, nil
			},
		)

		created, err := svc.CreateMovie(ctx, in)
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.NotEqual(t, inception.ID, created.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.CreateMovie(ctx, models.Movie{Genre: inception.Genre})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)

		var verrs validators.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("store error", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Movie{}, errors.New("boom"))

		_, err := svc.CreateMovie(ctx, models.Movie{Title: "Memento"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidDataProvided)
	})
}
