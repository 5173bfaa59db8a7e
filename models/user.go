package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account stored in the "users" collection.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user. It is used as the
	// subject of issued tokens.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// Username is the public account name used in every /users/{username}
	// route.
	Username string `bson:"username" json:"username"`

	// Password is always a bcrypt hash. It is never serialized to JSON.
	Password string `bson:"password" json:"-"`

	Email    string `bson:"email" json:"email"`
	Birthday *Date  `bson:"birthday,omitempty" json:"birthday,omitempty"`

	// FavoriteMovies holds movie IDs. The store keeps it free of duplicates
	// via $addToSet.
	FavoriteMovies []primitive.ObjectID `bson:"favoriteMovies" json:"favoriteMovies"`
}

// CollectionName returns the name of the collection that stores users.
func (u User) CollectionName() string {
	return "users"
}

// Public returns the registration response view of the user.
func (u User) Public() UserCreatedResponse {
	return UserCreatedResponse{
		Username: u.Username,
		Email:    u.Email,
		Birthday: u.Birthday,
	}
}
