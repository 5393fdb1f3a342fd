package engine

import (
	"fmt"

	"github.com/friendsofgo/errors"
)

var (
	// ErrKeyword is the cause of the keyword ConfigError returned by
	// InitialiseCan for keywords that cannot seed the machine.
	ErrKeyword = errors.New("bad keyword")

	errNoRotors = errors.New("no rotors")
)

// ConfigError reports an invalid machine setting.  Field names the setting;
// Err is the underlying cause and can be matched with errors.Is.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
