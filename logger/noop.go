package logger

import "go.uber.org/zap"

// NewNop creates a no-op logger that discards all output. The discord
// client and pollers fall back to it when constructed without a logger,
// which keeps their tests silent.
func NewNop() *DefaultLogger {
	return &DefaultLogger{logger: zap.NewNop().Sugar()}
}
