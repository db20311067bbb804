package model

import (
	"os"
	"path/filepath"
)

// defaultCacheDir places the page cache under the user cache directory,
// falling back to a dot-directory in the working directory.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "reddit-persona")
	}
	return ".reddit-persona-cache"
}
