package logger

// Logger defines the logging interface used throughout the bot. The
// updater and pollers log through it so tests can run components with a
// nop logger; Sync is called once during shutdown to flush buffered
// output.
type Logger interface {
	DebugW(msg string, keysAndValues ...any)
	InfoW(msg string, keysAndValues ...any)
	WarnW(msg string, keysAndValues ...any)
	ErrorW(msg string, keysAndValues ...any)
	Sync() error
}
