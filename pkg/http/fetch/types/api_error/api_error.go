package api_error

import (
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
)

// ErrorCodeKey is the body field whose presence marks a payload as a domain error.
const ErrorCodeKey = "errorCode"

type Error struct {
	Body map[string]any
}

func (apiError *Error) Is(target error) bool {
	return target == fetchErrors.ErrApiError
}

func (apiError *Error) Error() string {
	return fetchErrors.ErrApiError.Error()
}

func (apiError *Error) GetInput() any {
	return apiError.Body
}

func (apiError *Error) GetCode() string {
	code, _ := apiError.Body[ErrorCodeKey].(string)
	return code
}

// ErrorCode returns the raw errorCode value and whether the field is present.
func (apiError *Error) ErrorCode() (any, bool) {
	value, ok := apiError.Body[ErrorCodeKey]
	return value, ok
}

func New(body map[string]any) *Error {
	return &Error{Body: body}
}
