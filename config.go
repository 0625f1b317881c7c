package pretty

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Punctuation describes how a composite value is bracketed.
type Punctuation struct {
	Prefix    string `yaml:"prefix"`
	Delimiter string `yaml:"delimiter"`
	Suffix    string `yaml:"suffix"`
	// Indent enables line breaks and indentation when the children of a
	// value are themselves nestable.
	Indent bool `yaml:"indent"`
}

// Config controls every piece of literal text the printer emits.
type Config struct {
	IndentSize int    `yaml:"indent_size"`
	IndentFill string `yaml:"indent_fill"`

	Range Punctuation `yaml:"range"`
	Tuple Punctuation `yaml:"tuple"`
	Pair  Punctuation `yaml:"pair"`
	// Entry brackets the key/value entries of maps and two-value iterators.
	Entry Punctuation `yaml:"entry"`
	// Type wraps type names emitted by a TypedPrinter.
	Type Punctuation `yaml:"type"`

	EmptyOptional string `yaml:"empty_optional"`
	EmptyUnion    string `yaml:"empty_union"`
	Unit          string `yaml:"unit"`

	// NaturalKeys sorts string map keys in natural order ("a2" before "a10").
	NaturalKeys bool `yaml:"natural_keys"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		IndentSize:    4,
		IndentFill:    " ",
		Range:         Punctuation{Prefix: "{", Delimiter: ", ", Suffix: "}", Indent: true},
		Tuple:         Punctuation{Prefix: "(", Delimiter: ", ", Suffix: ")", Indent: true},
		Pair:          Punctuation{Prefix: "(", Delimiter: ": ", Suffix: ")"},
		Entry:         Punctuation{Delimiter: ": "},
		Type:          Punctuation{Delimiter: "(", Suffix: ")"},
		EmptyOptional: "nil",
		EmptyUnion:    "<nil>",
		Unit:          "struct{}",
	}
}

// Validate reports whether c can drive a printer.
func (c Config) Validate() error {
	if c.IndentSize < 0 {
		return fmt.Errorf("%w: indent_size %d is negative", ErrInvalidConfig, c.IndentSize)
	}
	if utf8.RuneCountInString(c.IndentFill) != 1 {
		return fmt.Errorf("%w: indent_fill %q must be a single character", ErrInvalidConfig, c.IndentFill)
	}
	return nil
}

// LoadConfig decodes a YAML document over [DefaultConfig]. Fields missing
// from the document keep their defaults; unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Option configures a Printer or TypedPrinter.
type Option func(*Config)

// WithConfig replaces the whole configuration. The logger already set by an
// earlier option is kept when cfg carries none.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		logger := c.Logger
		*c = cfg
		if c.Logger == nil {
			c.Logger = logger
		}
	}
}

// WithIndent sets the indentation step and fill character.
func WithIndent(size int, fill rune) Option {
	return func(c *Config) {
		c.IndentSize = size
		c.IndentFill = string(fill)
	}
}

// WithRange sets the punctuation of slices, arrays, maps and iterators.
func WithRange(p Punctuation) Option {
	return func(c *Config) { c.Range = p }
}

// WithTuple sets the punctuation of structs.
func WithTuple(p Punctuation) Option {
	return func(c *Config) { c.Tuple = p }
}

// WithPair sets the punctuation of [Pair] values.
func WithPair(p Punctuation) Option {
	return func(c *Config) { c.Pair = p }
}

// WithEntry sets the punctuation of map entries.
func WithEntry(p Punctuation) Option {
	return func(c *Config) { c.Entry = p }
}

// WithTypePunctuation sets the text wrapped around type names by a
// TypedPrinter.
func WithTypePunctuation(p Punctuation) Option {
	return func(c *Config) { c.Type = p }
}

// WithNaturalKeys sorts string map keys in natural order.
func WithNaturalKeys() Option {
	return func(c *Config) { c.NaturalKeys = true }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Validate() != nil {
		// Options are not allowed to leave the printer unusable.
		def := DefaultConfig()
		cfg.Logger.Debug("invalid indentation, using defaults",
			zap.Int("indent_size", cfg.IndentSize), zap.String("indent_fill", cfg.IndentFill))
		cfg.IndentSize, cfg.IndentFill = def.IndentSize, def.IndentFill
	}
	return cfg
}
