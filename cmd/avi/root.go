// ABOUTME: Root cobra command, persistent flags, and shared engine construction
// ABOUTME: Flags override settings; settings override built-in defaults

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/avi-go/internal/config"
	"github.com/mauromedda/avi-go/internal/intent"
	avilog "github.com/mauromedda/avi-go/internal/log"
)

// options holds the persistent flag values shared by every subcommand.
type options struct {
	configPath string
	strict     bool
	verbose    bool
	intentDirs []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "avi",
		Short: "avi - pattern-based intent recognition",
		Long: `avi matches free-form text against declared intents and extracts slot values.

Intents are declared in .intent/.json/.yaml/.toml files with patterns such as
"what is the weather in {default/locations}". Every file directly inside the
configured intent directories is loaded at startup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.avi/config.yaml merged with .avi/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "treat unmatchable patterns as load errors")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringArrayVarP(&opts.intentDirs, "intents", "i", nil, "intent directory (repeatable)")

	root.AddCommand(newReplCmd(opts))
	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// loadSettings reads config, then applies flag overrides and the log level.
func (o *options) loadSettings() (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if o.configPath != "" {
		s, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		config.ResolveEnvVars(s)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		s, err = config.Load(cwd)
		if err != nil {
			return nil, err
		}
		if len(s.IntentDirs) == 0 {
			s.IntentDirs = config.DefaultIntentDirs(cwd)
		}
	}

	if len(o.intentDirs) > 0 {
		s.IntentDirs = o.intentDirs
	}
	if o.strict {
		s.Strict = true
	}

	if s.LogLevel != "" {
		l, err := avilog.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		avilog.SetLevel(l)
	}
	if o.verbose {
		avilog.SetLevel(avilog.LevelDebug)
	}
	return s, nil
}

// buildRecognizer creates a fresh engine from s, loads builtins, then every
// intent directory. Missing directories are skipped unless requireDirs is set.
func buildRecognizer(s *config.Settings, requireDirs bool, builtins ...intent.Declaration) (*intent.Recognizer, *intent.Engine, error) {
	cfg, err := config.EngineConfig(s)
	if err != nil {
		return nil, nil, err
	}
	engine := intent.NewEngine(cfg)

	for _, d := range builtins {
		if _, err := engine.LoadIntent(d); err != nil {
			return nil, nil, fmt.Errorf("builtin intent: %w", err)
		}
	}
	for _, dir := range s.IntentDirs {
		if _, err := engine.LoadDir(dir); err != nil {
			if !requireDirs && errors.Is(err, fs.ErrNotExist) {
				avilog.Debug("skipping missing intent directory %s", dir)
				continue
			}
			return nil, nil, err
		}
	}
	avilog.Debug("engine ready: %d intents", engine.Len())
	return intent.NewRecognizer(engine), engine, nil
}
