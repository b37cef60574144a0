package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Keys shared by every session-scoped entry, so that one conversation can be
// followed across the assistant and the HTTP server logs.
const (
	FieldSession = "session_id"
	FieldState   = "session_state"
)

type StringField struct {
	Key   string
	Value string
}

// StringFields keeps only the pairs that have both a key and a value after
// trimming. A session that has no ID yet simply logs without one.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key, value := strings.TrimSpace(field.Key), strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields is logger.With that tolerates a nil logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

func CommonFields(sessionID, state string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSession, Value: sessionID},
		StringField{Key: FieldState, Value: state},
	)
}
