package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DirStatus reports whether a directory exists (or could be created) and
// whether it accepts writes. Err holds the creation failure, if any.
type DirStatus struct {
	Exists   bool
	Writable bool
	Err      error
}

// CheckDirStatus stats dirPath, creating it when missing, and reports the
// outcome. Config resolution uses this to pick the first writable home for
// the config file.
func CheckDirStatus(dirPath string) DirStatus {
	if _, err := os.Stat(dirPath); err != nil {
		if mkErr := os.MkdirAll(dirPath, 0755); mkErr != nil {
			return DirStatus{Err: mkErr}
		}
	}
	return DirStatus{Exists: true, Writable: canWrite(dirPath)}
}

// canWrite checks writability the only reliable way, by writing. The temp
// file is removed before returning.
func canWrite(dirPath string) bool {
	f, err := os.CreateTemp(dirPath, ".wtest-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// FileExists reports whether path can be stat'd.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath and any missing parents.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data as TOML into filePath, truncating any
// existing file.
func SaveTOMLFile(data any, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filePath, err)
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// GetAbsolutePath resolves configPath for display. Returns "unknown" for an
// empty path and the input unchanged when resolution fails, since this
// feeds log output rather than file access.
func GetAbsolutePath(configPath string) string {
	if configPath == "" {
		return "unknown"
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		return abs
	}
	return configPath
}

// GetExecutableDir returns the directory holding the running binary, the
// last-resort config home before falling back to builtin defaults.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
