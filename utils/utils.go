package utils

import (
	"path/filepath"
)

type GlobalOptions interface {
	GetBasePath() string
}

// GetPath resolves a relative path against the base directory.
func GetPath(path string, g GlobalOptions) string {
	if filepath.IsAbs(path) || path == "" {
		return path
	}
	return filepath.Join(g.GetBasePath(), path)
}
