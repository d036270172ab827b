package wildkmp

import (
	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/match"
	"github.com/coregx/wildkmp/rolling"
)

// MaxHashCapacity bounds Config.HashCapacity.
const MaxHashCapacity = 1 << 26

// Config controls engine behavior.
//
// Example:
//
//	config := wildkmp.DefaultConfig()
//	config.StrictHash = true // reject wildcard patterns in Hash
//	m, err := wildkmp.New(wildkmp.Hash, config)
type Config struct {
	// Wildcard matches any single character.
	// Default: '?'
	Wildcard byte

	// Separator joins pattern and text in Concat. It must differ from
	// Wildcard and must not occur in the inputs.
	// Default: '#'
	Separator byte

	// HashCapacity is the longest pattern Hash accepts. Zero selects the
	// shared power table of rolling.DefaultCapacity entries; any other value
	// builds a private table once per engine.
	// Default: 0
	HashCapacity int

	// StrictHash makes Hash reject patterns containing the wildcard with
	// ErrAlphabetViolation.
	// Default: false
	StrictHash bool

	// CountComparisons enables the comparison counter in engine Stats.
	// Default: false
	CountComparisons bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Wildcard:  alphabet.DefaultWildcard,
		Separator: alphabet.DefaultSeparator,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Wildcard != Separator
//   - HashCapacity: 0 to MaxHashCapacity
func (c Config) Validate() error {
	if c.Wildcard == c.Separator {
		return &ConfigError{
			Field:   "Separator",
			Message: "must differ from Wildcard",
		}
	}
	if c.HashCapacity < 0 || c.HashCapacity > MaxHashCapacity {
		return &ConfigError{
			Field:   "HashCapacity",
			Message: "must be between 0 and 67,108,864",
		}
	}
	return nil
}

func (c Config) options() match.Options {
	opts := match.Options{
		Alphabet: alphabet.Alphabet{
			Wildcard:  c.Wildcard,
			Separator: c.Separator,
		},
		StrictHash:       c.StrictHash,
		CountComparisons: c.CountComparisons,
	}
	if c.HashCapacity > 0 {
		opts.Powers = rolling.NewPowerTable(c.HashCapacity)
	}
	return opts
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wildkmp: invalid config: " + e.Field + ": " + e.Message
}
