package models

// UserRequest is the body accepted by POST /users and PUT /users/{username}.
// The same field rules apply to both routes.
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Birthday *Date  `json:"birthday,omitempty"`
}

// User converts the request into a user entity. The password is copied as
// is; hashing is the service's job.
func (r UserRequest) User() User {
	return User{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Birthday: r.Birthday,
	}
}

// LoginRequest is the body accepted by POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
