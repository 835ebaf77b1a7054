package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/conlog/conlog/pkg"
)

// configPath returns the default YAML configuration file path, beneath the
// user configuration directory when one is available.
var configPath = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err != nil {
				dir = "."
			}
		}

		return filepath.Join(dir, pkg.Name, "config.yaml")
	},
)

// cacheDir returns the directory used for profile output.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}

		return filepath.Join(dir, pkg.Name)
	},
)
