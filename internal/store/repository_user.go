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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account lookup, creation, updates and favorites against the
// "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] over the "users" collection
// of db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     logger,
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	err := r.collection.FindOne(ctx,
		bson.D{{Key: "username", Value: username}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsername").Msg("error finding user")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Create persists a new user and returns it with the assigned ID. A nil
// FavoriteMovies is stored as an empty array.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, username string, user models.User) (models.User, error) {
	set := bson.D{
		{Key: "username", Value: user.Username},
		{Key: "password", Value: user.Password},
		{Key: "email", Value: user.Email},
	}
	if user.Birthday != nil {
		set = append(set, bson.E{Key: "birthday", Value: user.Birthday})
	}

	return r.findOneAndUpdate(ctx, "*userRepository.Update", username, bson.D{{Key: "$set", Value: set}})
}

func (r *userRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (models.User, error) {
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "favoriteMovies", Value: movieID}}}}
	return r.findOneAndUpdate(ctx, "*userRepository.AddFavorite", username, update)
}

func (r *userRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (models.User, error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "favoriteMovies", Value: movieID}}}}
	return r.findOneAndUpdate(ctx, "*userRepository.RemoveFavorite", username, update)
}

func (r *userRepository) Delete(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)

	var deleted models.User
	err := r.collection.FindOneAndDelete(ctx, bson.D{{Key: "username", Value: username}}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error deleting user")
		return nil, fmt.Errorf("%w: %w", ErrUpdatingDocument, err)
	}

	return &deleted, nil
}

// findOneAndUpdate applies update to the user named username and decodes the
// document after the update. No match yields ErrUserNotFound.
func (r *userRepository) findOneAndUpdate(ctx context.Context, fn, username string, update bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "username", Value: username}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUpdatingDocument, err)
	}

	return updated, nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
