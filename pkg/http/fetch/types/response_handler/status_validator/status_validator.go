package status_validator

import (
	"context"
	"net/http"

	motmedelErrors "github.com/Motmedel/fetch_go/pkg/errors"
	motmedelHttpErrors "github.com/Motmedel/fetch_go/pkg/http/errors"
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	fetchTypesGenericError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/generic_error"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/status_validator/status_validator_config"
	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
)

// Validator rejects responses whose status code lies outside the structurally
// valid range. In-range codes pass without a verdict; how unsuccessful ones
// are interpreted is left to later handlers.
type Validator[T any] struct {
	MinimumStatusCode int
	MaximumStatusCode int
}

func (validator *Validator[T]) Handle(_ context.Context, response *http.Response) (*fetchTypesResult.Result[T], error) {
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	statusCode := response.StatusCode
	if statusCode < validator.MinimumStatusCode || statusCode > validator.MaximumStatusCode {
		return fetchTypesResult.NewErrorResult[T](
			fetchTypesGenericError.New(
				motmedelErrors.NewWithTrace(&fetchErrors.StatusCodeOutOfRangeError{StatusCode: statusCode}),
			),
		), nil
	}

	return nil, nil
}

func New[T any](options ...status_validator_config.Option) *Validator[T] {
	config := status_validator_config.New(options...)
	return &Validator[T]{
		MinimumStatusCode: config.MinimumStatusCode,
		MaximumStatusCode: config.MaximumStatusCode,
	}
}
