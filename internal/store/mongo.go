package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is an open MongoDB client bound to the application database.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB and pings the primary. Both steps share
// cfg.ConnectTimeout. The returned DB must be closed with [DB.Close].
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// establish connection
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to database successfully")

	return &DB{
		Database: client.Database(cfg.Name),
		client:   client,
		logger:   log,
	}, nil
}

// EnsureIndexes creates the lookup indexes used by the repositories. The
// indexes are not unique: username uniqueness is checked by the service.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		models.Movie{}.CollectionName(): {
			{Keys: bson.D{{Key: "Title", Value: 1}}},
			{Keys: bson.D{{Key: "Genre.Name", Value: 1}}},
			{Keys: bson.D{{Key: "Director.Name", Value: 1}}},
		},
		models.User{}.CollectionName(): {
			{Keys: bson.D{{Key: "username", Value: 1}}},
		},
	}

	for collection, idx := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("%w on %s: %w", ErrCreatingIndexes, collection, err)
		}
	}

	db.logger.Info().Str("func", "*DB.EnsureIndexes").Msg("indexes created successfully")
	return nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting database: %w", err)
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database disconnected")
	return nil
}
