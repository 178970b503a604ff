package json_resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	motmedelContext "github.com/Motmedel/fetch_go/pkg/context"
	motmedelErrors "github.com/Motmedel/fetch_go/pkg/errors"
	motmedelHttpContext "github.com/Motmedel/fetch_go/pkg/http/context"
	motmedelHttpErrors "github.com/Motmedel/fetch_go/pkg/http/errors"
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	fetchTypesErrorMapper "github.com/Motmedel/fetch_go/pkg/http/fetch/types/error_mapper"
	fetchTypesGenericError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/generic_error"
	"github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler/json_resolver/json_resolver_config"
	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
	fetchTypesSuccessChecker "github.com/Motmedel/fetch_go/pkg/http/fetch/types/success_checker"
	motmedelHttpTypes "github.com/Motmedel/fetch_go/pkg/http/types"
)

// Resolver reads and decodes the response body, producing a response value
// for successful status codes and a mapped error value otherwise. It always
// yields a verdict.
type Resolver[T any] struct {
	SuccessChecker fetchTypesSuccessChecker.SuccessChecker
	ErrorMapper    fetchTypesErrorMapper.Mapper
}

func (resolver *Resolver[T]) Handle(ctx context.Context, response *http.Response) (*fetchTypesResult.Result[T], error) {
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	var bodyData []byte

	if responseBody := response.Body; responseBody != nil {
		var err error
		bodyData, err = io.ReadAll(responseBody)
		if err != nil {
			wrappedErr := motmedelErrors.NewWithTrace(fmt.Errorf("io read all (response body): %w", err))
			slog.WarnContext(
				motmedelContext.WithErrorContextValue(ctx, wrappedErr),
				"The response body could not be read.",
			)
			return fetchTypesResult.NewErrorResult[T](fetchTypesGenericError.New(wrappedErr)), nil
		}
	}

	httpContext, _ := ctx.Value(motmedelHttpContext.HttpContextContextKey).(*motmedelHttpTypes.HttpContext)
	if httpContext != nil {
		httpContext.ResponseBody = bodyData
	}

	successChecker := resolver.SuccessChecker
	if successChecker == nil {
		successChecker = fetchTypesSuccessChecker.Default
	}

	if successChecker.Check(response.StatusCode) {
		var responseValue T
		if err := json.Unmarshal(bodyData, &responseValue); err != nil {
			wrappedErr := motmedelErrors.NewWithTrace(
				fmt.Errorf("json unmarshal (response body): %w", err),
				bodyData,
			)
			slog.WarnContext(
				motmedelContext.WithErrorContextValue(ctx, wrappedErr),
				"The response body could not be parsed as JSON.",
			)
			return fetchTypesResult.NewErrorResult[T](fetchTypesGenericError.New(wrappedErr)), nil
		}

		return fetchTypesResult.NewResponseResult[T](&responseValue), nil
	}

	var errorBody map[string]any
	if err := json.Unmarshal(bodyData, &errorBody); err != nil {
		wrappedErr := motmedelErrors.NewWithTrace(
			fmt.Errorf("json unmarshal (error response body): %w", err),
			bodyData,
		)
		slog.WarnContext(
			motmedelContext.WithErrorContextValue(ctx, wrappedErr),
			"The error response body could not be parsed as JSON.",
		)
		return fetchTypesResult.NewErrorResult[T](fetchTypesGenericError.New(wrappedErr)), nil
	}

	errorMapper := resolver.ErrorMapper
	if errorMapper == nil {
		errorMapper = fetchTypesErrorMapper.Default
	}

	mappedErr := errorMapper.Map(response, errorBody)
	if mappedErr == nil {
		return nil, motmedelErrors.NewWithTrace(fetchErrors.ErrNilMappedError, errorBody)
	}

	return fetchTypesResult.NewErrorResult[T](mappedErr), nil
}

func New[T any](options ...json_resolver_config.Option) *Resolver[T] {
	config := json_resolver_config.New(options...)
	return &Resolver[T]{SuccessChecker: config.SuccessChecker, ErrorMapper: config.ErrorMapper}
}
