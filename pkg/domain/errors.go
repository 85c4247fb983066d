package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ServerError is a logical failure reported by the coach service
// (ok:false with an error string). It is distinct from a transport
// failure, which surfaces as an ordinary wrapped error.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "server rejected the request"
	}
	return e.Message
}

// AsServerError unwraps err into a ServerError, or returns nil.
func AsServerError(err error) *ServerError {
	var se *ServerError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
