package config

import (
	"log"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide structured logger.
func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
