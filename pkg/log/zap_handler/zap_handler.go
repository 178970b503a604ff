package zap_handler

import (
	"context"
	"log/slog"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type groupObject []slog.Attr

func (groupObject groupObject) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	for _, attr := range groupObject {
		if field, ok := convertAttr(attr); ok {
			field.AddTo(encoder)
		}
	}
	return nil
}

func convertLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func convertAttr(attr slog.Attr) (zapcore.Field, bool) {
	attr.Value = attr.Value.Resolve()

	if attr.Equal(slog.Attr{}) {
		return zapcore.Field{}, false
	}

	switch attr.Value.Kind() {
	case slog.KindBool:
		return zap.Bool(attr.Key, attr.Value.Bool()), true
	case slog.KindDuration:
		return zap.Duration(attr.Key, attr.Value.Duration()), true
	case slog.KindFloat64:
		return zap.Float64(attr.Key, attr.Value.Float64()), true
	case slog.KindInt64:
		return zap.Int64(attr.Key, attr.Value.Int64()), true
	case slog.KindString:
		return zap.String(attr.Key, attr.Value.String()), true
	case slog.KindTime:
		return zap.Time(attr.Key, attr.Value.Time()), true
	case slog.KindUint64:
		return zap.Uint64(attr.Key, attr.Value.Uint64()), true
	case slog.KindGroup:
		groupAttrs := attr.Value.Group()
		if len(groupAttrs) == 0 {
			return zapcore.Field{}, false
		}
		if attr.Key == "" {
			return zap.Inline(groupObject(groupAttrs)), true
		}
		return zap.Object(attr.Key, groupObject(groupAttrs)), true
	default:
		return zap.Any(attr.Key, attr.Value.Any()), true
	}
}

func makeEntryCaller(pc uintptr) zapcore.EntryCaller {
	if pc == 0 {
		return zapcore.EntryCaller{}
	}

	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.PC == 0 {
		return zapcore.EntryCaller{}
	}

	return zapcore.EntryCaller{
		Defined:  true,
		PC:       frame.PC,
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
	}
}

type Handler struct {
	logger *zap.Logger
	fields []zapcore.Field
}

func (handler *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return handler.logger.Core().Enabled(convertLevel(level))
}

func (handler *Handler) Handle(_ context.Context, record slog.Record) error {
	checkedEntry := handler.logger.Core().Check(
		zapcore.Entry{
			Level:      convertLevel(record.Level),
			Time:       record.Time,
			LoggerName: handler.logger.Name(),
			Message:    record.Message,
			Caller:     makeEntryCaller(record.PC),
		},
		nil,
	)
	if checkedEntry == nil {
		return nil
	}

	fields := make([]zapcore.Field, len(handler.fields), len(handler.fields)+record.NumAttrs())
	copy(fields, handler.fields)

	record.Attrs(func(attr slog.Attr) bool {
		if field, ok := convertAttr(attr); ok {
			fields = append(fields, field)
		}
		return true
	})

	checkedEntry.Write(fields...)

	return nil
}

func (handler *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newFields := make([]zapcore.Field, len(handler.fields), len(handler.fields)+len(attrs))
	copy(newFields, handler.fields)

	for _, attr := range attrs {
		if field, ok := convertAttr(attr); ok {
			newFields = append(newFields, field)
		}
	}

	return &Handler{logger: handler.logger, fields: newFields}
}

func (handler *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}

	newFields := make([]zapcore.Field, len(handler.fields), len(handler.fields)+1)
	copy(newFields, handler.fields)
	newFields = append(newFields, zap.Namespace(name))

	return &Handler{logger: handler.logger, fields: newFields}
}

func New(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{logger: logger}
}
