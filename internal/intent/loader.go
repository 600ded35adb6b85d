// ABOUTME: Loads intent declarations from .intent/.json (easyjson), .yaml/.yml and .toml files
// ABOUTME: Directory loads parse files concurrently, then register in file-name order

package intent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mailru/easyjson"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	avilog "github.com/mauromedda/avi-go/internal/log"
)

// ErrUnsupportedFormat is returned for files that are not intent declarations.
var ErrUnsupportedFormat = errors.New("unsupported intent file format")

// maxParallelParse bounds concurrent file reads during LoadDir.
const maxParallelParse = 8

// IsIntentFile reports whether name has a recognized declaration extension.
func IsIntentFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".intent", ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// DecodeDeclaration parses data according to the file extension of name.
func DecodeDeclaration(name string, data []byte) (Declaration, error) {
	var d Declaration
	switch strings.ToLower(filepath.Ext(name)) {
	case ".intent", ".json":
		if err := easyjson.Unmarshal(data, &d); err != nil {
			return Declaration{}, fmt.Errorf("parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Declaration{}, fmt.Errorf("parse %s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &d); err != nil {
			return Declaration{}, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		return Declaration{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return d, nil
}

// ReadDeclaration reads and parses one declaration file.
func ReadDeclaration(path string) (Declaration, error) {
	if !IsIntentFile(path) {
		return Declaration{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Declaration{}, fmt.Errorf("read intent %s: %w", path, err)
	}
	return DecodeDeclaration(path, data)
}

// LoadFile reads a declaration file and loads it.
func (e *Engine) LoadFile(path string) (string, error) {
	d, err := ReadDeclaration(path)
	if err != nil {
		return "", err
	}
	name, err := e.LoadIntent(d)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return name, nil
}

// LoadDir loads every declaration file directly inside dir. Files are parsed
// concurrently; a parse error loads nothing. Intents are then registered in
// file-name order, stopping at the first load error with the names loaded so far.
func (e *Engine) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read intents directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsIntentFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	// Each goroutine writes its own index; no mutex is needed.
	decls := make([]Declaration, len(paths))
	var g errgroup.Group
	g.SetLimit(maxParallelParse)
	for i, path := range paths {
		g.Go(func() error {
			d, err := ReadDeclaration(path)
			if err != nil {
				return err
			}
			decls[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(decls))
	for i, d := range decls {
		name, err := e.LoadIntent(d)
		if err != nil {
			return names, fmt.Errorf("load %s: %w", paths[i], err)
		}
		names = append(names, name)
	}
	avilog.Debug("loaded %d intents from %s", len(names), dir)
	return names, nil
}
