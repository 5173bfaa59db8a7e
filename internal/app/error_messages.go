// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// movie API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgWelcome is the body of GET /.
	MsgWelcome = "Welcome to the Movie API!"

	// MsgInvalidJSON is returned when the request body cannot be decoded
	// into the payload type of the route (malformed JSON or unknown fields).
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded body fails the
	// checks of the route, for example a movie without a title.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMovieNotCreated is returned when the store refuses a new movie.
	MsgMovieNotCreated = "movie could not be created"

	// MsgMovieNotFound is returned when no movie has the requested title.
	MsgMovieNotFound = "Movie not found"

	// MsgGenreNotFound is returned when no movie has a genre of that name.
	MsgGenreNotFound = "Genre not found"

	// MsgDirectorNotFound is returned when no movie has a director of that
	// name.
	MsgDirectorNotFound = "Director not found"

	// MsgUserNotFound is returned when no account has the requested
	// username.
	MsgUserNotFound = "User not found"

	// MsgUserAlreadyExists is a format string taking the rejected username.
	MsgUserAlreadyExists = "%s already exists"

	// MsgPermissionDenied is returned when the authenticated user tries to
	// change another user's profile.
	MsgPermissionDenied = "Permission denied"

	// MsgInvalidMovieID is returned when a favorites route gets a movie ID
	// that is not a 24 character hex ObjectID.
	MsgInvalidMovieID = "invalid movie ID"

	// MsgUserDeleted is the message of the DELETE /users/{username} body.
	MsgUserDeleted = "User deleted"

	// MsgInvalidLoginPassword is returned when the supplied
	// username/password combination does not match any account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgUnauthorized is returned by the auth middleware for a missing,
	// malformed, expired or otherwise invalid bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgCORSOriginNotAllowed is a format string taking the rejected origin.
	MsgCORSOriginNotAllowed = "CORS policy does not allow access from origin %s"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. The detail goes to the
	// log only.
	MsgInternalServerError = "internal server error"

	// MsgSomethingWentWrong is returned by the recovery middleware after a
	// handler panicked.
	MsgSomethingWentWrong = "Something went wrong!"
)
