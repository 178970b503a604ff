package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	motmedelErrors "github.com/Motmedel/fetch_go/pkg/errors"
	motmedelHttpContext "github.com/Motmedel/fetch_go/pkg/http/context"
	motmedelHttpErrors "github.com/Motmedel/fetch_go/pkg/http/errors"
	fetchResolver "github.com/Motmedel/fetch_go/pkg/http/fetch/resolver"
	fetchConfig "github.com/Motmedel/fetch_go/pkg/http/fetch/types/fetch_config"
	fetchTypesResponseHandler "github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/content_type_validator"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/content_type_validator/content_type_validator_config"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/json_resolver"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/json_resolver/json_resolver_config"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/status_validator"
	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
	motmedelHttpTypes "github.com/Motmedel/fetch_go/pkg/http/types"
	"go.uber.org/multierr"
)

// Fetch performs a single request. An HttpContext placed in the context is
// populated with the outgoing request and the raw response for log
// enrichment. The response body is left unread.
func Fetch(ctx context.Context, url string, options ...fetchConfig.Option) (*http.Response, error) {
	config := fetchConfig.New(options...)

	httpClient := config.HttpClient
	if httpClient == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpClient)
	}

	method := config.Method
	if method == "" {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrEmptyMethod)
	}

	if url == "" {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrEmptyUrl)
	}

	requestBody := config.Body

	var requestBodyReader io.Reader
	if len(requestBody) != 0 {
		requestBodyReader = bytes.NewReader(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, requestBodyReader)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("http new request with context: %w", err),
			method, url,
		)
	}
	if request == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpRequest)
	}

	for name, value := range config.Headers {
		request.Header.Set(name, value)
	}

	httpContext, _ := ctx.Value(motmedelHttpContext.HttpContextContextKey).(*motmedelHttpTypes.HttpContext)
	if httpContext != nil {
		httpContext.Request = request
		httpContext.RequestBody = requestBody
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("http client do: %w", err), request)
	}
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	if httpContext != nil {
		httpContext.Response = response
	}

	return response, nil
}

// MakeDefaultHandlers builds the standard handler chain: status validation,
// content type validation, then JSON resolution.
func MakeDefaultHandlers[T any](config *fetchConfig.Config) []fetchTypesResponseHandler.Handler[T] {
	if config == nil {
		config = fetchConfig.New()
	}

	return []fetchTypesResponseHandler.Handler[T]{
		status_validator.New[T](),
		content_type_validator.New[T](
			content_type_validator_config.WithExpectedContentTypeSubstring(config.ExpectedContentTypeSubstring),
		),
		json_resolver.New[T](
			json_resolver_config.WithSuccessChecker(config.SuccessChecker),
			json_resolver_config.WithErrorMapper(config.ErrorMapper),
		),
	}
}

// FetchJson performs a request and resolves the response through the default
// handler chain. Expected failures surface in the result value; the error
// return is reserved for faults.
func FetchJson[T any](
	ctx context.Context,
	url string,
	options ...fetchConfig.Option,
) (fetchResult *fetchTypesResult.Result[T], err error) {
	config := fetchConfig.New(options...)

	response, err := Fetch(ctx, url, options...)
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("fetch: %w", err), url)
	}
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	if responseBody := response.Body; responseBody != nil {
		defer multierr.AppendInvoke(&err, multierr.Close(responseBody))
	}

	resolveResult, err := fetchResolver.Resolve(ctx, response, MakeDefaultHandlers[T](config))
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("resolve: %w", err), response)
	}

	return resolveResult, nil
}
