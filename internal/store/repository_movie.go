package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// movieRepository is the MongoDB-backed implementation of [MovieRepository].
type movieRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewMovieRepository constructs a [MovieRepository] over the "movies"
// collection of db.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		collection: db.Collection(models.Movie{}.CollectionName()),
		logger:     logger,
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.FindAll").Msg("error executing find")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	movies := make([]models.Movie, 0)
	if err = cursor.All(ctx, &movies); err != nil {
		log.Err(err).Str("func", "*movieRepository.FindAll").Msg("error decoding movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movies, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (models.Movie, error) {
	return r.findOne(ctx, bson.D{{Key: "Title", Value: title}})
}

func (r *movieRepository) FindByGenreName(ctx context.Context, name string) (models.Movie, error) {
	return r.findOne(ctx, bson.D{{Key: "Genre.Name", Value: name}})
}

func (r *movieRepository) FindByDirectorName(ctx context.Context, name string) (models.Movie, error) {
	return r.findOne(ctx, bson.D{{Key: "Director.Name", Value: name}})
}

// Create inserts movie. The driver generates the ObjectID when movie.ID is
// zero, and the returned movie carries it.
func (r *movieRepository) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Create").Msg("error inserting movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = id
	}

	return movie, nil
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.D) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	err := r.collection.FindOne(ctx, filter).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Movie{}, ErrMovieNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.findOne").Msg("error finding movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}
