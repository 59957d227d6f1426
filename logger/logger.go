package logger

import (
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process-wide zap logger. Set LOG_MODE=development
// for human-readable output during local runs.
func InitLogger() (*zap.Logger, error) {
	if os.Getenv("LOG_MODE") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
