package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CredentialsRequest is the body of both /signup and /signin
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are present. Format beyond presence is
// not enforced; the store normalizes the email before persistence.
func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse carries the signed session token
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries the protected payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-facing error message
type ErrorResponse struct {
	Error string `json:"error"`
}
