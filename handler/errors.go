package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and the public message written for it.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

var ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
