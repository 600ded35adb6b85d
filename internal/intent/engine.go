// ABOUTME: Intent engine: owns loaded intents, the default slot table, and the pattern compiler
// ABOUTME: Single writer while loading, many concurrent readers afterwards

package intent

import (
	"fmt"
	"sync"

	avilog "github.com/mauromedda/avi-go/internal/log"
	"github.com/mauromedda/avi-go/internal/pattern"
	"github.com/mauromedda/avi-go/internal/slot"
)

// Config holds engine configuration.
type Config struct {
	Defaults  *slot.Table // default slots; nil uses slot.Builtin()
	Strict    bool        // unmatchable patterns fail the load instead of being logged
	CacheSize int         // compiled pattern cache size; see pattern.Config
}

// Engine holds intents in load order.
type Engine struct {
	mu       sync.RWMutex
	intents  []*Intent
	names    map[string]struct{}
	compiler *pattern.Compiler
	strict   bool
}

// NewEngine creates an empty engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Defaults == nil {
		cfg.Defaults = slot.NewTable(slot.Builtin())
	}
	return &Engine{
		names:    make(map[string]struct{}),
		compiler: pattern.NewCompiler(cfg.Defaults, pattern.Config{Strict: cfg.Strict, CacheSize: cfg.CacheSize}),
		strict:   cfg.Strict,
	}
}

// LoadIntent validates decl and appends it as a new intent, returning its name.
// A failed load leaves previously loaded intents untouched.
func (e *Engine) LoadIntent(decl Declaration) (string, error) {
	if err := decl.Validate(); err != nil {
		return "", err
	}
	slots, err := decl.ParseSlots()
	if err != nil {
		return "", fmt.Errorf("intent %q: %w", decl.Intent, err)
	}

	in := Intent{
		Name:          decl.Intent,
		Patterns:      decl.Patterns,
		RegexPatterns: decl.RegexPatterns,
		Slots:         slots,
	}
	if err := e.precompile(&in); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, dup := e.names[in.Name]; dup {
		return "", fmt.Errorf("%w: %q", ErrDuplicateIntent, in.Name)
	}
	e.names[in.Name] = struct{}{}
	e.intents = append(e.intents, in.clone())

	avilog.Debug("intent %q loaded: %d patterns, %d regex patterns, %d slots",
		in.Name, len(in.Patterns), len(in.RegexPatterns), len(in.Slots))
	return in.Name, nil
}

// precompile warms the pattern cache. In strict mode any unmatchable pattern,
// or a placeholder naming an undeclared local slot, fails the load.
func (e *Engine) precompile(in *Intent) error {
	for _, p := range in.Patterns {
		if _, err := e.compiler.Compile(p); err != nil {
			if e.strict {
				return fmt.Errorf("intent %q: pattern %q: %w", in.Name, p, err)
			}
			avilog.Warn("intent %q: pattern %q will never match: %v", in.Name, p, err)
			continue
		}
		if !e.strict {
			continue
		}
		for _, ph := range pattern.Placeholders(p) {
			if _, ok := in.Slots[ph.Name]; !ph.Default && !ok {
				return fmt.Errorf("intent %q: pattern %q: %w: {%s} is not declared", in.Name, p, ErrInvalidSlot, ph.Name)
			}
		}
	}
	for _, rx := range in.RegexPatterns {
		if _, err := e.compiler.CompileRegex(rx); err != nil {
			if e.strict {
				return fmt.Errorf("intent %q: regex %q: %w", in.Name, rx, err)
			}
			avilog.Warn("intent %q: regex %q will never match: %v", in.Name, rx, err)
		}
	}
	return nil
}

// Intents returns a snapshot of the loaded intents in load order.
func (e *Engine) Intents() []*Intent {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]*Intent(nil), e.intents...)
}

// Len returns the number of loaded intents.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.intents)
}

// Defaults returns the default slot table.
func (e *Engine) Defaults() *slot.Table {
	return e.compiler.Defaults()
}

// Compiler returns the engine's pattern compiler.
func (e *Engine) Compiler() *pattern.Compiler {
	return e.compiler
}

// Strict reports whether the engine rejects unmatchable patterns at load time.
func (e *Engine) Strict() bool {
	return e.strict
}
