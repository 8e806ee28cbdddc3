package config

import "go.uber.org/zap"

// NewLogger builds the process-wide logger: structured production output
// in release mode, human-readable development output otherwise.
func NewLogger(ginMode string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if ginMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("Failed to build logger: " + err.Error())
	}
	return logger
}
