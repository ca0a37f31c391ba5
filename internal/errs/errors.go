package errs

import "encoding/json"

type Error string

func (e Error) Error() string { return string(e) }

// MarshalJSON keeps error lists readable on the wire instead of
// collapsing to empty objects.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidCredentials = Error("invalid credentials")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidToken       = Error("invalid token")
	ErrMessageNotFound    = Error("message not found")
	ErrInvalidParams      = Error("invalid params")
	ErrTooManyRequests    = Error("too many requests")

	ErrInvalidName    = Error("name must be between 2 and 100 characters")
	ErrInvalidEmail   = Error("please provide a valid email")
	ErrInvalidMobile  = Error("please provide a valid mobile number")
	ErrInvalidMessage = Error("message must be between 10 and 1000 characters")
	ErrEmptyPassword  = Error("password is required")
)
