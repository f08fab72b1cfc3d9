package utils

import (
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ragforge/flowgraph/constants"
)

var internalLogger *zap.SugaredLogger

func init() {
	initLoggers("production")
}

func initLoggers(mode string) {
	// Internal logger: to stderr, with levels and debug support
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if os.Getenv(constants.EnvDebug) != "" || mode == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		// Fallback to standard library logger if zap fails
		log.Printf("Failed to initialize zap logger: %v, falling back to standard logger", err)
		internalLogger = nil
		return
	}
	internalLogger = l.Sugar()
}

func Info(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Infof(format, v...)
	}
}

func Warn(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Warnf(format, v...)
	}
}

func Error(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Errorf(format, v...)
	}
}

func Debug(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Debugf(format, v...)
	}
}

// SetInternalOutput redirects the internal logger, primarily for test capture.
func SetInternalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel, // Always allow debug for test capture
	)
	internalLogger = zap.New(core).Sugar()
}

// SetMode rebuilds the internal logger for the given mode ("debug" enables
// debug-level output).
func SetMode(mode string) {
	initLoggers(mode)
}

// Errorf logs the error message and returns it as an error value.
func Errorf(format string, v ...any) error {
	err := fmt.Errorf(format, v...)
	if internalLogger != nil {
		internalLogger.Errorf("%s", err)
	}
	return err
}
