// ABOUTME: Standard filesystem paths for avi configuration and intents
// ABOUTME: Resolves ~/.avi/ for global and .avi/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".avi"
	projectDirName = ".avi"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.avi/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.avi/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// DefaultIntentDirs returns the intent directories used when none are configured
// (project-local first, then global).
func DefaultIntentDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "intents"),
		filepath.Join(GlobalDir(), "intents"),
	}
}

// HistoryFile returns the REPL input history path.
func HistoryFile() string {
	return filepath.Join(GlobalDir(), "history")
}
