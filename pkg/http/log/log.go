package log

import (
	"context"
	"log/slog"
	"net/http"

	motmedelHttpContext "github.com/Motmedel/fetch_go/pkg/http/context"
	httpContextExtractorConfig "github.com/Motmedel/fetch_go/pkg/http/log/types/config"
	motmedelHttpTypes "github.com/Motmedel/fetch_go/pkg/http/types"
)

type HttpContextExtractor struct {
	HeaderExtractor func(http.Header) string
}

func (httpContextExtractor *HttpContextExtractor) Handle(ctx context.Context, record *slog.Record) error {
	if record == nil {
		return nil
	}

	if requestId, ok := ctx.Value(motmedelHttpContext.RequestIdContextKey).(string); ok {
		record.Add(slog.Group("http", slog.Group("request", slog.String("id", requestId))))
	}

	httpContext, ok := ctx.Value(motmedelHttpContext.HttpContextContextKey).(*motmedelHttpTypes.HttpContext)
	if !ok || httpContext == nil {
		return nil
	}

	headerExtractor := httpContextExtractor.HeaderExtractor
	if headerExtractor == nil {
		headerExtractor = httpContextExtractorConfig.DefaultHeaderExtractor
	}

	var httpAttrs []any

	if request := httpContext.Request; request != nil {
		requestAttrs := []any{slog.String("method", request.Method)}

		if len(httpContext.RequestBody) != 0 {
			requestAttrs = append(
				requestAttrs,
				slog.Group("body", slog.Int("bytes", len(httpContext.RequestBody))),
			)
		}

		if headers := headerExtractor(request.Header); headers != "" {
			requestAttrs = append(requestAttrs, slog.String("headers", headers))
		}

		httpAttrs = append(httpAttrs, slog.Group("request", requestAttrs...))

		if url := request.URL; url != nil {
			record.Add(slog.Group("url", slog.String("full", url.String())))
		}

		if userAgent := request.Header.Get("User-Agent"); userAgent != "" {
			record.Add(slog.Group("user_agent", slog.String("original", userAgent)))
		}
	}

	if response := httpContext.Response; response != nil {
		responseAttrs := []any{slog.Int("status_code", response.StatusCode)}

		if mimeType := response.Header.Get("Content-Type"); mimeType != "" {
			responseAttrs = append(responseAttrs, slog.String("mime_type", mimeType))
		}

		if len(httpContext.ResponseBody) != 0 {
			responseAttrs = append(
				responseAttrs,
				slog.Group("body", slog.Int("bytes", len(httpContext.ResponseBody))),
			)
		}

		if headers := headerExtractor(response.Header); headers != "" {
			responseAttrs = append(responseAttrs, slog.String("headers", headers))
		}

		httpAttrs = append(httpAttrs, slog.Group("response", responseAttrs...))
	}

	if len(httpAttrs) != 0 {
		record.Add(slog.Group("http", httpAttrs...))
	}

	return nil
}

func New(options ...httpContextExtractorConfig.Option) *HttpContextExtractor {
	config := httpContextExtractorConfig.New(options...)
	return &HttpContextExtractor{HeaderExtractor: config.HeaderExtractor}
}
