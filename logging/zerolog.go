package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologAdapter wraps a zerolog.Logger to implement the Logger interface.
// Arguments are rendered printf-style into the message, matching the
// semantics of the other adapters.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a Logger from a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &ZerologAdapter{logger: logger}
}

func render(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, args ...any) {
	z.logger.Debug().Msg(render(msg, args))
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, args ...any) {
	z.logger.Info().Msg(render(msg, args))
}

// Warn logs a warning message.
func (z *ZerologAdapter) Warn(msg string, args ...any) {
	z.logger.Warn().Msg(render(msg, args))
}

// Error logs an error message.
func (z *ZerologAdapter) Error(msg string, args ...any) {
	z.logger.Error().Msg(render(msg, args))
}
