package log

import (
	"os"

	"github.com/conlog/conlog/pkg"
)

// Env resolves named variables from the hosting environment.
type Env interface {
	// Var returns the value of the named variable, or an error when it
	// cannot be resolved.
	Var(name string) (string, error)
}

// OSEnv is an Env backed by the process environment.
type OSEnv struct{}

// Var implements Env over os.LookupEnv. Unset variables resolve to an error
// chain containing pkg.ErrEnvLookup.
func (OSEnv) Var(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", pkg.MakeError(pkg.ErrEnvLookup).
			Wrapf("variable %q is not set", name)
	}

	return value, nil
}
