// Package logging は zap ロガーの生成を担います。
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New は指定されたレベルとエンコーディングで構造化ロガーを生成します。
func New(level, encoding string) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevel()
	if err := atomic.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return nil, fmt.Errorf("logging: parse level %q: %w", level, err)
	}

	if encoding == "" {
		encoding = "json"
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(l.String()))
		},
	}

	cfg := zap.Config{
		Level:             atomic,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}

// PrintfAdapter は Printf 形式のロガーを要求するライブラリに zap を渡すためのアダプタです。
type PrintfAdapter struct {
	logger  *zap.SugaredLogger
	verbose bool
}

// NewPrintfAdapter は PrintfAdapter を生成します。
func NewPrintfAdapter(logger *zap.Logger, verbose bool) PrintfAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PrintfAdapter{logger: logger.Sugar(), verbose: verbose}
}

// Printf はメッセージを info レベルで出力します。
func (a PrintfAdapter) Printf(format string, args ...any) {
	a.logger.Infof(strings.TrimRight(format, "\n"), args...)
}

// Verbose は詳細ログを出力するかどうかを返します。
func (a PrintfAdapter) Verbose() bool {
	return a.verbose
}
