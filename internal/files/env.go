package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv overrides the directory holding the log and the exported files.
	HomeEnv = "JAM_HOME"
	// LogEnv overrides the path of the timesheet log.
	LogEnv = "JAM_LOG"
)

// ResolveBasePath determines where jam looks for the log and writes exports,
// defaulting to the working directory. The location can be overridden by
// exporting JAM_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := lookupEnv(HomeEnv); ok {
		return normalizePath(override)
	}
	return os.Getwd()
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
