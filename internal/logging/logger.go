package logging

import "go.uber.org/zap"

// NewLogger builds the root logger. Logs go to stderr so they never bleed
// into the dashboard drawn on stdout.
func NewLogger(name string, debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named(name), nil
}
