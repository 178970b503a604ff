package errors

import (
	"errors"
)

var (
	ErrGenericError           = errors.New("generic error")
	ErrApiError               = errors.New("api error")
	ErrStatusCodeOutOfRange   = errors.New("status code out of range")
	ErrUnsuccessfulStatusCode = errors.New("unsuccessful status code")
	ErrUnexpectedContentType  = errors.New("unexpected content type")
	ErrNoHandlerVerdict       = errors.New("no handler verdict")
	ErrNilMappedError         = errors.New("nil mapped error")
)

type StatusCodeOutOfRangeError struct {
	StatusCode int
}

func (statusCodeOutOfRangeError *StatusCodeOutOfRangeError) Is(target error) bool {
	return target == ErrStatusCodeOutOfRange
}

func (statusCodeOutOfRangeError *StatusCodeOutOfRangeError) Error() string {
	return ErrStatusCodeOutOfRange.Error()
}

func (statusCodeOutOfRangeError *StatusCodeOutOfRangeError) GetInput() any {
	return statusCodeOutOfRangeError.StatusCode
}

type UnsuccessfulStatusCodeError struct {
	StatusCode int
}

func (unsuccessfulStatusCodeError *UnsuccessfulStatusCodeError) Is(target error) bool {
	return target == ErrUnsuccessfulStatusCode
}

func (unsuccessfulStatusCodeError *UnsuccessfulStatusCodeError) Error() string {
	return ErrUnsuccessfulStatusCode.Error()
}

func (unsuccessfulStatusCodeError *UnsuccessfulStatusCodeError) GetInput() any {
	return unsuccessfulStatusCodeError.StatusCode
}

type UnexpectedContentTypeError struct {
	ContentType         string
	ExpectedContentType string
}

func (unexpectedContentTypeError *UnexpectedContentTypeError) Is(target error) bool {
	return target == ErrUnexpectedContentType
}

func (unexpectedContentTypeError *UnexpectedContentTypeError) Error() string {
	return ErrUnexpectedContentType.Error()
}

func (unexpectedContentTypeError *UnexpectedContentTypeError) GetInput() any {
	return unexpectedContentTypeError.ContentType
}
