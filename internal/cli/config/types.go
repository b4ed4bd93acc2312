// Package config loads leaprange CLI configuration with koanf.
//
// Sources are layered lowest to highest: built-in defaults, leaprange.yaml
// (or .yml) found in the working directory or a parent, LEAPRANGE_*
// environment variables, and explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output  string      `koanf:"output"`
	Verbose bool        `koanf:"verbose"`
	Domain  string      `koanf:"domain"`
	Limit   int         `koanf:"limit"`
	Check   CheckConfig `koanf:"check"`
	REPL    REPLConfig  `koanf:"repl"`
}

// CheckConfig configures the property sweep.
type CheckConfig struct {
	MaxBound int `koanf:"max_bound"`
	Workers  int `koanf:"workers"`
}

// REPLConfig configures the interactive shell.
type REPLConfig struct {
	HistoryFile string `koanf:"history_file"`
	Prompt      string `koanf:"prompt"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=styled text, non-TTY=plain text
	DefaultDomain   = "auto"
	DefaultLimit    = 1_000_000
	DefaultMaxBound = 6
	DefaultPrompt   = "leaprange> "
	DefaultHistory  = ".leaprange_history"
)

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Domain: DefaultDomain,
		Limit:  DefaultLimit,
		Check:  CheckConfig{MaxBound: DefaultMaxBound},
		REPL:   REPLConfig{Prompt: DefaultPrompt},
	}
}
