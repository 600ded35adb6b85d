// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Controls intent directories, strict mode, cache size, logging, and extra default slots

package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	IntentDirs []string       `yaml:"intent_dirs,omitempty"`
	Strict     bool           `yaml:"strict,omitempty"`
	CacheSize  int            `yaml:"cache_size,omitempty"`
	LogLevel   string         `yaml:"log_level,omitempty"`
	Watch      bool           `yaml:"watch,omitempty"`
	Slots      map[string]any `yaml:"slots,omitempty"` // extra default slots: "*" or a list
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := LoadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads Settings from a YAML file. Returns zero Settings and the
// os error if the file does not exist.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; slot maps are merged.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if len(project.IntentDirs) > 0 {
		result.IntentDirs = project.IntentDirs
	}
	if project.Strict {
		result.Strict = true
	}
	if project.CacheSize != 0 {
		result.CacheSize = project.CacheSize
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Watch {
		result.Watch = true
	}

	if len(project.Slots) > 0 {
		slots := make(map[string]any, len(global.Slots)+len(project.Slots))
		maps.Copy(slots, global.Slots)
		maps.Copy(slots, project.Slots)
		result.Slots = slots
	}

	return &result
}
