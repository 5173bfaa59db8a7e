package models

// UserCreatedResponse is returned by POST /users. It deliberately has no
// password field.
type UserCreatedResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Birthday *Date  `json:"birthday"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserDeletedResponse is returned by DELETE /users/{username}. User is nil
// when no account matched.
type UserDeletedResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// ErrorResponse is the JSON error body used by routes that answer errors in
// JSON.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError is one violated field rule in a 422 response.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// ValidationErrorResponse is the 422 body listing every violated rule.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
