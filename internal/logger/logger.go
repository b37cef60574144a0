package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// App is added to every JSON entry.
	App   string
	JSON  bool
	Debug bool
	// Output lists zap sink URLs or paths. Defaults to stdout.
	Output []string
}

// New builds the application logger. Entries carry their message under the
// "step" key; stack traces are only attached in debug mode.
func New(opts Options) (*zap.Logger, error) {
	encoder := zap.NewProductionEncoderConfig()
	encoder.MessageKey = "step"
	encoder.TimeKey = "time"
	encoder.NameKey = zapcore.OmitKey
	encoder.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder.EncodeDuration = zapcore.StringDurationEncoder
	encoder.EncodeLevel = zapcore.LowercaseLevelEncoder

	encoding := "console"
	if opts.JSON {
		encoding = "json"
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	output := opts.Output
	if len(output) == 0 {
		output = []string{"stdout"}
	}

	cfg := zap.Config{
		Encoding:          encoding,
		Level:             level,
		DisableStacktrace: !opts.Debug,
		OutputPaths:       output,
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig:     encoder,
	}
	if opts.JSON && opts.App != "" {
		cfg.InitialFields = map[string]any{"app": opts.App}
	}

	return cfg.Build()
}
