package gocryptomkt

import (
	"errors"
	"fmt"
)

type Error interface {
	error
	Code() int
	Kind() ErrorKind
}

type apiError struct {
	kind    ErrorKind
	code    int
	message string
	cause   error
}

func (this *apiError) Error() string {
	if this.cause != nil {
		return fmt.Sprintf("%s: %s: %v", this.kind, this.message, this.cause)
	}
	return fmt.Sprintf("%s: %s", this.kind, this.message)
}

func (this *apiError) Code() int {
	return this.code
}

func (this *apiError) Kind() ErrorKind {
	return this.kind
}

// Message returns the message without kind prefix and cause.
func (this *apiError) Message() string {
	return this.message
}

func (this *apiError) Unwrap() error {
	return this.cause
}

// New creates a new API error with a code and a message
func NewError(code int, message string, args ...interface{}) Error {
	if len(args) > 0 {
		return &apiError{kind: ApiError, code: code, message: fmt.Sprintf(message, args...)}
	}
	return &apiError{kind: ApiError, code: code, message: message}
}

func NewNetworkError(cause error, message string, args ...interface{}) Error {
	return &apiError{kind: NetworkError, message: fmt.Sprintf(message, args...), cause: cause}
}

func NewDecodeError(cause error, message string, args ...interface{}) Error {
	return &apiError{kind: DecodeError, message: fmt.Sprintf(message, args...), cause: cause}
}

func NewInvalidArgument(message string, args ...interface{}) Error {
	return &apiError{kind: InvalidArgument, message: fmt.Sprintf(message, args...)}
}

// KindOf returns the kind of the first Error in the chain, 0 when err is not one.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}

func IsNetworkError(err error) bool { return KindOf(err) == NetworkError }

func IsDecodeError(err error) bool { return KindOf(err) == DecodeError }

func IsInvalidArgument(err error) bool { return KindOf(err) == InvalidArgument }

func IsApiError(err error) bool { return KindOf(err) == ApiError }
