package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/validators"
	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type movieService struct {
	movieRepository store.MovieRepository
	validator       validators.Validator
	logger          *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		validator:       validators.NewMovieValidator(),
		logger:          logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movieRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, title string) (models.Movie, error) {
	movie, err := s.movieRepository.FindByTitle(ctx, title)
	if err != nil {
		return models.Movie{}, fmt.Errorf("error finding movie %q: %w", title, err)
	}
	return movie, nil
}

// GetGenre returns the Genre of the first movie in that genre.
func (s *movieService) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	movie, err := s.movieRepository.FindByGenreName(ctx, name)
	if err != nil {
		return models.Genre{}, fmt.Errorf("error finding genre %q: %w", name, err)
	}
	return movie.Genre, nil
}

// GetDirector returns the Director of the first movie by that director.
func (s *movieService) GetDirector(ctx context.Context, name string) (models.Director, error) {
	movie, err := s.movieRepository.FindByDirectorName(ctx, name)
	if err != nil {
		return models.Director{}, fmt.Errorf("error finding director %q: %w", name, err)
	}
	return movie.Director, nil
}

// CreateMovie inserts movie as given. A client-supplied ID is discarded so
// the store always assigns one.
func (s *movieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, movie); err != nil {
		log.Info().Err(err).Msg("movie rejected by validation")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	movie.ID = primitive.NilObjectID
	created, err := s.movieRepository.Create(ctx, movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("error creating movie: %w", err)
	}

	log.Info().Str("movie_id", created.ID.Hex()).Str("title", created.Title).Msg("movie created")
	return created, nil
}
