// Package testinfra provides test infrastructure for integration testing
// against a real MongoDB.
//
// The package uses testcontainers-go to start a disposable MongoDB container
// and exposes its connection URI:
//
//	func TestSomething(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo)
//
//	    db, err := store.NewConnectMongo(ctx, config.DB{URI: mongo.URI, Name: "myFlixDB"}, logger.Nop())
//	    // ...
//	}
//
// Everything in this package is built only with the integration tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// Tests are skipped when Docker is not available.
package testinfra
