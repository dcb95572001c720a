package cmd

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. The console belongs to the actor, so
// logs go to stderr or to cfg.LogFile.
func NewLogger(cfg Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	config.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	config.OutputPaths = []string{"stderr"}
	if cfg.LogFile != "" {
		config.OutputPaths = []string{cfg.LogFile}
	}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"

	return config.Build(zap.AddCaller())
}
