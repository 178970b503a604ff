package generic_error

import (
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	"github.com/google/uuid"
)

type Error struct {
	Cause error
	Id    string
}

func (genericError *Error) Is(target error) bool {
	return target == fetchErrors.ErrGenericError
}

func (genericError *Error) Error() string {
	return fetchErrors.ErrGenericError.Error()
}

func (genericError *Error) GetCause() error {
	return genericError.Cause
}

func (genericError *Error) Unwrap() error {
	return genericError.Cause
}

func (genericError *Error) GetId() string {
	return genericError.Id
}

func New(cause error) *Error {
	return &Error{Cause: cause, Id: uuid.New().String()}
}
