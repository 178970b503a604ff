package response_handler

import (
	"context"
	"net/http"

	fetchTypesResult "github.com/Motmedel/fetch_go/pkg/http/fetch/types/result"
)

// Handler inspects a response. A nil result with a nil error means no
// verdict; a non-nil result is definitive and ends resolution.
type Handler[T any] interface {
	Handle(context.Context, *http.Response) (*fetchTypesResult.Result[T], error)
}

type HandlerFunction[T any] func(context.Context, *http.Response) (*fetchTypesResult.Result[T], error)

func (f HandlerFunction[T]) Handle(ctx context.Context, response *http.Response) (*fetchTypesResult.Result[T], error) {
	return f(ctx, response)
}

func New[T any](f func(context.Context, *http.Response) (*fetchTypesResult.Result[T], error)) Handler[T] {
	return HandlerFunction[T](f)
}
