package commands

import (
	"fmt"

	"github.com/MGTheTrain/aes-vault/internal/pkg/config"
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel:  config.LogLevelInfo,
		LogType:   config.LogTypeConsole,
		LogFormat: config.LogFormatText,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
