package log

import (
	"errors"
	"testing"

	"github.com/conlog/conlog/pkg"
)

// stubEnv is an Env backed by a fixed map; absent names fail the lookup.
type stubEnv map[string]string

func (e stubEnv) Var(name string) (string, error) {
	value, ok := e[name]
	if !ok {
		return "", pkg.MakeError(pkg.ErrEnvLookup).
			Wrapf("variable %q is not set", name)
	}

	return value, nil
}

func TestOSEnv_Var(t *testing.T) {
	t.Setenv("CONLOG_TEST_FILTER", "debug")

	value, err := OSEnv{}.Var("CONLOG_TEST_FILTER")
	if err != nil {
		t.Fatalf("Var failed for a set variable: %v", err)
	}

	if value != "debug" {
		t.Errorf("Var = %q, want %q", value, "debug")
	}
}

func TestOSEnv_Var_Unset(t *testing.T) {
	_, err := OSEnv{}.Var("CONLOG_TEST_FILTER_UNSET")
	if err == nil {
		t.Fatal("expected an error for an unset variable")
	}

	if !errors.Is(err, pkg.ErrEnvLookup) {
		t.Errorf("expected ErrEnvLookup in chain, got %v", err)
	}
}

func TestNewEnv_LookupFailurePropagates(t *testing.T) {
	_, err := NewEnv(stubEnv{}, "LOG")
	if !errors.Is(err, pkg.ErrEnvLookup) {
		t.Errorf("expected ErrEnvLookup, got %v", err)
	}
}
