package types

import (
	"errors"
	"io"
)

// Config holds construction parameters for a Store.
type Config struct {
	// Verbosity is the initial trace level. Informational traces at or
	// below this level are echoed to Chatter.
	Verbosity int `json:"verbosity" yaml:"verbosity"`

	// Chatter receives informational traces. Nil discards them, keeping
	// the core free of I/O.
	Chatter io.Writer `json:"-" yaml:"-"`

	// Confirm is the confirmation gate for destructive operations.
	// Nil defaults to ConfirmDeny.
	Confirm ConfirmFunc `json:"-" yaml:"-"`
}

// ErrVerbosityInvalid reports a negative verbosity level.
var ErrVerbosityInvalid = errors.New("verbosity must not be negative")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Verbosity < 0 {
		return ErrVerbosityInvalid
	}
	return nil
}
