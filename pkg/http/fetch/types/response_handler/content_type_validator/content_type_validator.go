package content_type_validator

import (
	"context"
	"net/http"
	"strings"

	motmedelErrors "github.com/Motmedel/fetch_go/pkg/errors"
	motmedelHttpErrors "github.com/Motmedel/fetch_go/pkg/http/errors"
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/content_type_validator/content_type_validator_config"
	fetchTypesGenericError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/generic_error"
	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
)

// Validator rejects responses whose Content-Type header value does not
// contain the expected substring. The comparison is case-sensitive and the
// body is never touched.
type Validator[T any] struct {
	ExpectedContentTypeSubstring string
}

func (validator *Validator[T]) Handle(_ context.Context, response *http.Response) (*fetchTypesResult.Result[T], error) {
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	responseHeader := response.Header
	if responseHeader == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponseHeader)
	}

	expectedContentTypeSubstring := validator.ExpectedContentTypeSubstring
	if expectedContentTypeSubstring == "" {
		expectedContentTypeSubstring = content_type_validator_config.DefaultExpectedContentTypeSubstring
	}

	contentType := responseHeader.Get("Content-Type")
	if !strings.Contains(contentType, expectedContentTypeSubstring) {
		return fetchTypesResult.NewErrorResult[T](
			fetchTypesGenericError.New(
				motmedelErrors.NewWithTrace(
					&fetchErrors.UnexpectedContentTypeError{
						ContentType:         contentType,
						ExpectedContentType: expectedContentTypeSubstring,
					},
				),
			),
		), nil
	}

	return nil, nil
}

func New[T any](options ...content_type_validator_config.Option) *Validator[T] {
	config := content_type_validator_config.New(options...)
	return &Validator[T]{ExpectedContentTypeSubstring: config.ExpectedContentTypeSubstring}
}
