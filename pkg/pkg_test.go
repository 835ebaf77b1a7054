package pkg

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "conlog"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from VERSION file, so it should not be empty.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := string(buf); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestError_SentinelIdentity(t *testing.T) {
	wrapped := MakeError(ErrEnvLookup).Wrapf("variable %q is not set", "LOG")

	if !errors.Is(wrapped, ErrEnvLookup) {
		t.Error("expected errors.Is to find ErrEnvLookup in wrapped chain")
	}

	if errors.Is(wrapped, ErrAlreadyInstalled) {
		t.Error("did not expect errors.Is to find ErrAlreadyInstalled")
	}
}

func TestError_MessageOrder(t *testing.T) {
	err := MakeError(ErrReadStdin).Wrapf("after %d bytes", 42)

	want := "failed to read stdin: after 42 bytes"
	if got := err.Error(); got != want {
		t.Errorf("Expected message %q, got %q", want, got)
	}
}

func TestMakeError_SkipsNil(t *testing.T) {
	if e := MakeError(nil, nil); e != nil {
		t.Errorf("Expected nil Error, got %v", e)
	}

	e := MakeError(nil, ErrLoadConfig)
	if len(e) != 1 || !errors.Is(e, ErrLoadConfig) {
		t.Errorf("Expected single-element chain, got %v", e)
	}
}

func TestUnwrapErrors(t *testing.T) {
	inner := errors.New("inner")
	chain := UnwrapErrors(MakeError(inner).Wrapf("outer"))

	if len(chain) < 2 {
		t.Fatalf("Expected at least 2 errors in chain, got %d", len(chain))
	}

	if !errors.Is(chain[0], inner) {
		t.Errorf("Expected innermost error first, got %v", chain[0])
	}

	if !strings.Contains(chain.Error(), "outer") {
		t.Errorf("Expected chain to contain outer error, got %q", chain.Error())
	}
}
