package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/conlog/conlog/pkg"
)

// loadConfig is a [kong.ConfigurationLoader] that reads flag defaults from a
// flat YAML mapping.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadConfig, "/path/to/config.yaml")
//
// Keys are flag names; hyphens may be written as underscores:
//
//	log-filter: "server=debug,info"
//	log_color: true
//	log-time-layout: RFC3339Nano
//
// Command-line flags override config file values. A file that fails to
// parse degrades to built-in defaults, mirroring the filter's drop policy
// for malformed directives. A file that fails to read is an error.
func loadConfig(r io.Reader) (kong.Resolver, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.MakeError(pkg.ErrLoadConfig).Wrap(err)
	}

	values := map[string]any{}

	if err := yaml.Unmarshal(buf, &values); err != nil {
		return config{}, nil
	}

	return config(values), nil
}

// config implements [kong.Resolver] for flat YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return normalize(value), nil
	}

	// Flag names use hyphens, but YAML keys may use underscores.
	underscore := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := r[underscore]; ok {
		return normalize(value), nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize renders numeric values as strings, which Kong expects when
// parsing resolved values.
func normalize(value any) any {
	switch n := value.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return value
	}
}
