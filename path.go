package konfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var errEmptyPathElement = errors.New("app directory and file name must not be empty")

// UserConfigPath returns the path of fileName inside appDir under the user's
// configuration directory. XDG_CONFIG_HOME takes precedence over os.UserConfigDir.
func UserConfigPath(appDir, fileName string) (string, error) {
	if appDir == "" || fileName == "" {
		return "", fmt.Errorf("%w: %w", ErrConfig, errEmptyPathElement)
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot determine user config dir: %w", ErrConfig, err)
		}

		base = dir
	}

	return filepath.Join(base, appDir, fileName), nil
}
