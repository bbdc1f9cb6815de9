package schnorrbatch

// Config configures how a Verifier fans out batch checks.
type Config struct {
	// NumWorkers controls parallelization (0 = auto-detect)
	NumWorkers int
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0, // Auto-detect
	}
}
