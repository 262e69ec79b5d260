package uniquelines

import "io"

// Config holds configuration settings for a deduplication pass
type Config struct {
	ReadBufferSize  int       // file IO buffer size for the input stream
	WriteBufferSize int       // file IO buffer size for the output stream
	NumWorkers      int       // maximum number of files processed concurrently by ProcessFiles
	Progress        io.Writer // optional sink receiving the raw input bytes as they are consumed; must be safe for concurrent use when shared across ProcessFiles workers
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		ReadBufferSize:  1 << 20, // 1MB
		WriteBufferSize: 1 << 20, // 1MB
		NumWorkers:      4,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize <= 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = d.NumWorkers
	}
	// skipping Progress as nil means no progress reporting
	return c
}
