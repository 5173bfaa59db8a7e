package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidMovieID      = errors.New("invalid movie ID")

	ErrUsernameTaken    = errors.New("username already exists")
	ErrPermissionDenied = errors.New("permission denied")

	ErrWrongCredentials        = errors.New("wrong username or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
