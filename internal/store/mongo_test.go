package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDB_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes on both collections", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		db := &DB{Database: mt.DB, logger: logger.Nop()}
		require.NoError(mt, db.EnsureIndexes(context.Background()))

		collections := map[string]int{}
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName != "createIndexes" {
				continue
			}
			coll := evt.Command.Lookup("createIndexes").StringValue()
			indexes, err := evt.Command.Lookup("indexes").Array().Values()
			require.NoError(mt, err)
			collections[coll] = len(indexes)
		}
		assert.Equal(mt, map[string]int{"movies": 3, "users": 1}, collections)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		db := &DB{Database: mt.DB, logger: logger.Nop()}
		assert.ErrorIs(mt, db.EnsureIndexes(context.Background()), ErrCreatingIndexes)
	})
}

func TestDB_CloseWithoutClient(t *testing.T) {
	db := &DB{logger: logger.Nop()}
	assert.NoError(t, db.Close(context.Background()))
}

func TestNewConnectMongo_InvalidURI(t *testing.T) {
	_, err := NewConnectMongo(context.Background(), config.DB{
		URI:            "not-a-mongo-uri",
		Name:           "myFlixDB",
		ConnectTimeout: time.Second,
	}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during database connection")
}

func TestNewConnectMongo_Unreachable(t *testing.T) {
	_, err := NewConnectMongo(context.Background(), config.DB{
		URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
		Name:           "myFlixDB",
		ConnectTimeout: 500 * time.Millisecond,
	}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping")
}
