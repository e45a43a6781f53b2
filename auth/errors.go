package auth

import "errors"

// ErrNoEmptyString is the error we return when hashing an empty password
var ErrNoEmptyString = errors.New("value must not be empty")

// ErrMismatchedHashAndPassword is the error for a failed password comparison
var ErrMismatchedHashAndPassword = errors.New("password does not match")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrInvalidCredentials is the single error the local strategy returns for
// both an unknown email and a wrong password, so responses cannot be used
// to enumerate registered emails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMissingToken is returned when the authorization header carries no token
var ErrMissingToken = errors.New("missing authorization token")

// ErrTokenMalformed is returned for tokens that do not parse
var ErrTokenMalformed = errors.New("token is malformed")

// ErrTokenInvalid is returned when the token signature does not verify
var ErrTokenInvalid = errors.New("token signature is invalid")

// ErrTokenExpired is returned for expired tokens when expiry is enforced
var ErrTokenExpired = errors.New("token is expired")

// ErrUnknownSubject is returned when a valid token references an identity
// that no longer exists
var ErrUnknownSubject = errors.New("token subject no longer exists")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsMalformedError will check for tokens we could not parse
func IsMalformedError(err error) bool {
	return errors.Is(err, ErrTokenMalformed)
}

// IsAuthRejected reports whether err is a terminal authentication failure,
// as opposed to an internal error (storage, hashing, signing).
func IsAuthRejected(err error) bool {
	for _, target := range []error{
		ErrInvalidCredentials,
		ErrIdentityNotFound,
		ErrMismatchedHashAndPassword,
		ErrMissingToken,
		ErrTokenMalformed,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrUnknownSubject,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
