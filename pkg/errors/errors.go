package errors

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WrapError is a wrapped registry error
type WrapError interface {
	IsAlreadyRegistered() bool
	Error() string
}

type wrapError struct {
	msg string
	err error
}

// Errorf returns new error with message defined by format and args
// If error is not nil, err.Error() is attached to the message
func Errorf(err error, format string, args ...interface{}) WrapError {
	message := fmt.Sprintf(format, args...)
	if err != nil {
		message = fmt.Sprintf("%s: %s", message, err.Error())
	}
	return &wrapError{
		msg: message,
		err: err,
	}
}

// IsAlreadyRegistered returns true if the error wraps an attempt to
// register a collector that is already registered
func (e *wrapError) IsAlreadyRegistered() bool {
	target := prometheus.AlreadyRegisteredError{}
	return errors.As(e.err, &target)
}

// Error returns the error message
func (e *wrapError) Error() string {
	return e.msg
}
