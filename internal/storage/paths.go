// ABOUTME: Default filesystem locations for stored data.
// ABOUTME: Follows the XDG base directory spec.
package storage

import (
	"os"
	"path/filepath"
)

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nutriscan")
}
