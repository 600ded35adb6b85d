// ABOUTME: Compiles literal placeholder patterns and raw regexes into anchored, case-insensitive regexps
// ABOUTME: Resolves {default/x} against the default slot table; caches results in an LRU

package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/avi-go/internal/slot"
)

// Compilation failures. Any of them leaves the pattern unmatchable.
var (
	ErrUnknownDefaultSlot      = errors.New("unknown default slot")
	ErrMalformedPlaceholder    = errors.New("malformed placeholder")
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
	ErrDuplicateSlot           = errors.New("duplicate slot in pattern")
	ErrReservedSlotName        = errors.New("reserved slot name")
	ErrInvalidPattern          = errors.New("invalid pattern")
)

const defaultCacheSize = 512

// Config holds compiler options.
type Config struct {
	// Strict turns silent degradations (unterminated braces, bare placeholders
	// using the reserved prefix) into compile errors.
	Strict bool
	// CacheSize bounds the compiled-pattern cache (default 512; negative disables).
	CacheSize int
}

// Compiled is a ready-to-match pattern.
type Compiled struct {
	Source string         // pattern as declared
	Regexp *regexp.Regexp // anchored, case-insensitive
	Groups []string       // named capture groups in order
}

// cacheKey separates literal and raw compilations of the same text.
type cacheKey struct {
	raw  bool
	text string
}

// result memoizes failures too, so an unmatchable pattern is parsed once.
type result struct {
	compiled *Compiled
	err      error
}

// Compiler turns patterns into regexps. Safe for concurrent use.
type Compiler struct {
	defaults *slot.Table
	strict   bool
	cache    *lru.Cache[cacheKey, result]
}

// NewCompiler creates a compiler resolving default placeholders against defaults.
func NewCompiler(defaults *slot.Table, cfg Config) *Compiler {
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaultCacheSize
	}
	c := &Compiler{defaults: defaults, strict: cfg.Strict}
	if cfg.CacheSize > 0 {
		// lru.New only fails on a non-positive size.
		c.cache, _ = lru.New[cacheKey, result](cfg.CacheSize)
	}
	return c
}

// Strict reports whether the compiler runs in strict mode.
func (c *Compiler) Strict() bool {
	return c.strict
}

// Defaults returns the table default placeholders resolve against.
func (c *Compiler) Defaults() *slot.Table {
	return c.defaults
}

// CacheLen returns the number of memoized compilations.
func (c *Compiler) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Compile translates a literal pattern into an anchored regexp with one named
// group per placeholder.
func (c *Compiler) Compile(literal string) (*Compiled, error) {
	return c.memo(cacheKey{text: literal}, func() (*Compiled, error) {
		return c.compileLiteral(literal)
	})
}

// CompileRegex compiles a raw, user-authored regular expression case-insensitively.
// No placeholder syntax applies and no anchors are added.
func (c *Compiler) CompileRegex(raw string) (*Compiled, error) {
	return c.memo(cacheKey{raw: true, text: raw}, func() (*Compiled, error) {
		return build(raw, "(?i)"+raw)
	})
}

func (c *Compiler) memo(key cacheKey, fn func() (*Compiled, error)) (*Compiled, error) {
	if c.cache != nil {
		if r, ok := c.cache.Get(key); ok {
			return r.compiled, r.err
		}
	}
	compiled, err := fn()
	if c.cache != nil {
		c.cache.Add(key, result{compiled: compiled, err: err})
	}
	return compiled, err
}

func (c *Compiler) compileLiteral(literal string) (*Compiled, error) {
	var b strings.Builder
	b.WriteString("(?i)^")

	seen := make(map[string]bool)
	for _, tok := range scan(literal) {
		switch tok.kind {
		case tokenText:
			b.WriteString(regexp.QuoteMeta(tok.text))
		case tokenUnterminated:
			if c.strict {
				return nil, fmt.Errorf("%w at offset %d in %q", ErrUnterminatedPlaceholder, tok.offset, literal)
			}
			b.WriteString(regexp.QuoteMeta(tok.text))
		case tokenPlaceholder:
			p := newPlaceholder(tok)
			body, err := c.placeholderBody(p)
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, literal)
			}
			if seen[p.Group] {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateSlot, p.Group, literal)
			}
			seen[p.Group] = true
			fmt.Fprintf(&b, "(?P<%s>%s)", p.Group, body)
		}
	}

	b.WriteByte('$')
	return build(literal, b.String())
}

// placeholderBody returns the group body for p.
func (c *Compiler) placeholderBody(p Placeholder) (string, error) {
	if !p.Default {
		if c.strict && strings.HasPrefix(p.Name, DefaultPrefix) {
			return "", fmt.Errorf("%w: %q", ErrReservedSlotName, p.Name)
		}
		return ".+?", nil
	}
	if strings.Contains(p.Name, "/") {
		return "", fmt.Errorf("%w: {%s}", ErrMalformedPlaceholder, p.Body)
	}
	def, ok := c.defaults.Get(p.Name)
	if !ok {
		return "", c.unknownDefault(p.Name)
	}
	return def.RegexBody(), nil
}

// unknownDefault builds the lookup error, suggesting the closest known name.
func (c *Compiler) unknownDefault(name string) error {
	if name != "" {
		if matches := fuzzy.Find(name, c.defaults.Names()); len(matches) > 0 {
			return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownDefaultSlot, name, matches[0].Str)
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownDefaultSlot, name)
}

func build(source, expr string) (*Compiled, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, source, err)
	}
	var groups []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			groups = append(groups, name)
		}
	}
	return &Compiled{Source: source, Regexp: re, Groups: groups}, nil
}
