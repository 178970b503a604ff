package context_logger

import (
	motmedelLog "github.com/Motmedel/fetch_go/pkg/log"
	"log/slog"
)

func New(handler slog.Handler, extractors ...motmedelLog.ContextExtractor) *slog.Logger {
	return slog.New(&motmedelLog.ContextHandler{Next: handler, Extractors: extractors})
}
