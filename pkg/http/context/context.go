package context

import (
	"context"
	motmedelHttpTypes "github.com/Motmedel/fetch_go/pkg/http/types"
)

type requestIdContextType struct{}

var RequestIdContextKey = &requestIdContextType{}

type httpContextContextType struct{}

var HttpContextContextKey httpContextContextType

func WithHttpContextValue(parent context.Context, httpContext *motmedelHttpTypes.HttpContext) context.Context {
	return context.WithValue(parent, HttpContextContextKey, httpContext)
}

func WithRequestIdValue(parent context.Context, requestId string) context.Context {
	return context.WithValue(parent, RequestIdContextKey, requestId)
}
