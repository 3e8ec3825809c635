package logger

// Config holds logger configuration. Level here is the zap level name;
// the CLI's verbosity names go through ParseLevel first. OutputPaths
// accepts zap sink URLs, so stdout plus a log file both work.
type Config struct {
	Level       string   `yaml:"level"`
	OutputPaths []string `yaml:"output_paths"`
}
