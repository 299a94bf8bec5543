package authclient

import "fmt"

// AuthError is an explicit rejection from the server: bad credentials, an
// invalid token, or a refused registration. It carries the server's message
// and is not retried automatically.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NetworkError is a transport-level failure where no response was received.
// Always recoverable by retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrUnauthenticated is returned before any network call when an operation
// that needs a token was invoked without one.
var ErrUnauthenticated = &AuthError{StatusCode: 0, Message: "unauthenticated"}
