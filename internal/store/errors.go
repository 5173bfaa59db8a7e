package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMovieNotFound is returned when a movie lookup matches no document.
	ErrMovieNotFound = errors.New("movie was not found")

	// ErrUserNotFound is returned when a user lookup or update matches no
	// document.
	ErrUserNotFound = errors.New("user was not found")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so that both can be matched with [errors.Is].
var (
	// ErrExecutingQuery is returned when a find command or cursor iteration
	// fails.
	ErrExecutingQuery = errors.New("error executing mongo query")

	// ErrInsertingDocument is returned when an insert command fails.
	ErrInsertingDocument = errors.New("error inserting document")

	// ErrUpdatingDocument is returned when an update, find-and-modify or
	// delete command fails.
	ErrUpdatingDocument = errors.New("error updating document")

	// ErrCreatingIndexes is returned when index creation fails at startup.
	ErrCreatingIndexes = errors.New("error creating indexes")
)
