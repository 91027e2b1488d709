package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. Logs always go to stderr; stdout
// belongs to the rendered report.
func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("EARNSCHED_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		logger, err = config.Build(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}
