// Package logging builds the zap logger shared by the commands.
package logging

import "go.uber.org/zap"

// New returns a development logger at debug level when verbose is set, and
// a no-op logger otherwise.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("cardquery")
}
