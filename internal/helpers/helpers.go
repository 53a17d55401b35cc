package helpers

import (
	"os"

	"github.com/spf13/afero"
)

// GetEnv returns the value of key or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Contains reports whether s is present in slice.
func Contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// Exists reports whether path is present on fs.
func Exists(fs afero.Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// RemoveIfExists deletes path only when it is still present, making repeated
// cleanup attempts safe. It reports whether a removal actually happened.
func RemoveIfExists(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return true, nil
}

// WriteToFile writes content to path with regular file permissions.
func WriteToFile(fs afero.Fs, path string, content []byte) error {
	return afero.WriteFile(fs, path, content, 0o644)
}
