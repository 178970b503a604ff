package error_mapper

import (
	"net/http"

	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	fetchTypesApiError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/api_error"
	fetchTypesGenericError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/generic_error"
)

// Mapper converts an unsuccessful response and its decoded body into the
// error value of a result.
type Mapper interface {
	Map(*http.Response, map[string]any) error
}

type MapperFunction func(*http.Response, map[string]any) error

func (f MapperFunction) Map(response *http.Response, body map[string]any) error {
	return f(response, body)
}

func New(f func(*http.Response, map[string]any) error) Mapper {
	return MapperFunction(f)
}

// Default treats bodies carrying an errorCode field as domain errors and
// everything else as generic errors.
var Default = New(
	func(response *http.Response, body map[string]any) error {
		if _, ok := body[fetchTypesApiError.ErrorCodeKey]; ok {
			return fetchTypesApiError.New(body)
		}

		var statusCode int
		if response != nil {
			statusCode = response.StatusCode
		}

		return fetchTypesGenericError.New(&fetchErrors.UnsuccessfulStatusCodeError{StatusCode: statusCode})
	},
)
