package response

import (
	"errors"
	"net/http"
)

// Error is an error that knows the HTTP status it should be reported with.
type Error struct {
	Code    int
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func NewError(code int, message string) Error {
	return Error{
		Code:    code,
		Message: message,
	}
}

// FromError unwraps an Error from err. Anything else becomes a 500.
func FromError(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return NewError(http.StatusInternalServerError, err.Error())
}
