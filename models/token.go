package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims is the claim set carried by every issued bearer token.
// The subject ("sub") is the hex ObjectID of the user; Username is kept for
// clients that want to display it without another round trip.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID primitive.ObjectID `json:"-"`

	// Username is a copy of the "username" claim.
	Username string `json:"-"`
}

// GetUserID parses the subject claim of the wrapped token as an ObjectID.
func (t *Token) GetUserID() (primitive.ObjectID, error) {
	if t.Token == nil {
		return primitive.NilObjectID, fmt.Errorf("error extracting UserID from token: token is nil")
	}

	subject, err := t.Claims.GetSubject()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error converting UserID from token to ObjectID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
