package service

// ValidationError marks a client-caused failure: the request is rejected
// before any store access and maps to HTTP 400 at the API boundary.
// Any other error reaching the handler is treated as infrastructure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
