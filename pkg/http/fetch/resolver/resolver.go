package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	motmedelContext "github.com/Motmedel/fetch_go/pkg/context"
	motmedelErrors "github.com/Motmedel/fetch_go/pkg/errors"
	motmedelHttpErrors "github.com/Motmedel/fetch_go/pkg/http/errors"
	fetchErrors "github.com/Motmedel/fetch_go/pkg/http/fetch/errors"
	fetchTypesGenericError "github.com/Motmedel/fetch_go/pkg/http/fetch/types/generic_error"
	fetchTypesResponseHandler "github.com/Motmedel/fetch_go/pkg/http/fetch/types/response_handler"
	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
)

// Resolve runs the handlers in order and returns the first result one of them
// produces. Nil handlers are skipped. When no handler yields a verdict, a
// generic error result is returned rather than a Go error.
func Resolve[T any](
	ctx context.Context,
	response *http.Response,
	handlers []fetchTypesResponseHandler.Handler[T],
) (*fetchTypesResult.Result[T], error) {
	if response == nil {
		return nil, motmedelErrors.NewWithTrace(motmedelHttpErrors.ErrNilHttpResponse)
	}

	for _, handler := range handlers {
		if handler == nil {
			continue
		}

		handlerResult, err := handler.Handle(ctx, response)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("handler handle: %w", err), response)
		}

		if handlerResult != nil {
			return handlerResult, nil
		}
	}

	noVerdictErr := motmedelErrors.NewWithTrace(fetchErrors.ErrNoHandlerVerdict)
	slog.WarnContext(
		motmedelContext.WithErrorContextValue(ctx, noVerdictErr),
		"No response handler produced a result.",
	)

	return fetchTypesResult.NewErrorResult[T](fetchTypesGenericError.New(noVerdictErr)), nil
}
