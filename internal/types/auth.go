package types

import "github.com/go-playground/validator/v10"

// SignUpRequest represents the request to create a new account.
type SignUpRequest struct {
	Name            string `json:"name" validate:"required,min=1"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
}

// Validate validates the SignUpRequest using the validator.
func (r *SignUpRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// User represents an account profile for API responses.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SignUpResponse carries the created user. No token is issued until the
// email address is verified.
type SignUpResponse struct {
	User *User `json:"user"`
}
