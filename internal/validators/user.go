package validators

import (
	"context"

	"github.com/MKhiriev/movie-api/models"
)

// Field names of user payloads. They double as the "path" of a reported
// error and as scope names for Validate.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// userRules are applied to registration and profile update bodies.
var userRules = []fieldRule{
	{field: FieldUsername, tag: "min=5", message: "Username is required"},
	{field: FieldUsername, tag: "alphanum", message: "Username contains non-alphanumeric characters - not allowed."},
	{field: FieldPassword, tag: "required", message: "Password is required", secret: true},
	{field: FieldEmail, tag: "email", message: "Email does not appear to be valid"},
}

// loginRules are applied to POST /login bodies.
var loginRules = []fieldRule{
	{field: FieldUsername, tag: "required", message: "Username is required"},
	{field: FieldPassword, tag: "required", message: "Password is required", secret: true},
}

// UserValidator implements [Validator] for user registration, update and
// login payloads.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate evaluates every rule for obj and returns [ValidationErrors] listing
// all violations, or nil. fields restricts the rules to the named fields.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRequest:
		return result(check(userRules, userRequestField(value), fields...))
	case *models.UserRequest:
		return result(check(userRules, userRequestField(*value), fields...))

	case models.LoginRequest:
		return result(check(loginRules, loginRequestField(value), fields...))
	case *models.LoginRequest:
		return result(check(loginRules, loginRequestField(*value), fields...))

	default:
		return ErrUnsupportedType
	}
}

func userRequestField(r models.UserRequest) func(string) any {
	return func(field string) any {
		switch field {
		case FieldUsername:
			return r.Username
		case FieldPassword:
			return r.Password
		case FieldEmail:
			return r.Email
		}
		return nil
	}
}

func loginRequestField(r models.LoginRequest) func(string) any {
	return func(field string) any {
		switch field {
		case FieldUsername:
			return r.Username
		case FieldPassword:
			return r.Password
		}
		return nil
	}
}

// result converts an empty list into a nil error so callers can compare
// against nil.
func result(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
