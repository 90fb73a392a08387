// Package config carries the tunable knobs behind the engine's four
// operations: the Cleaner's attribute allow-list and junk-tag set, the
// Main Locator's candidate/navigational tag sets, and the Sibling
// Detector's pattern-length cap and common-prefix minimum. It keeps the
// teacher repository's functional-options builder
// (WithDefault().WithX(...).Build()) and JSON-file loading
// (WithConfigFile), trimmed to these knobs — the crawl-session fields
// (seed URLs, concurrency, backoff, rate limiting) have no place in a
// synchronous, single-document engine (spec §5) and are dropped.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds every tunable for the engine. Zero value is not usable
// directly — build one with WithDefault().Build() or WithConfigFile().
type Config struct {
	// maxPatternLength caps L in the multi-element search (§4.4b). Real
	// pages rarely exceed L=4; capping higher costs nothing on the
	// corpus this engine targets.
	maxPatternLength int
	// minCommonPrefixLength is the minimum common-prefix length for a
	// single-element candidate to be accepted (§4.4a: len(P) >= 2).
	minCommonPrefixLength int

	// allowedAttributes is the attribute allow-list; everything else is
	// stripped by the Cleaner.
	allowedAttributes []string
	// junkTags are recursively removed by the Cleaner, along with
	// comments and doctypes.
	junkTags []string
	// voidTags never take children and serialize without a closing tag.
	voidTags []string

	// mainCandidateTags are the tag names considered for the Main
	// Locator's third selection tier.
	mainCandidateTags []string
	// navigationalTags are excluded from that tier's text-byte count.
	navigationalTags []string
}

type configDTO struct {
	MaxPatternLength      int      `json:"maxPatternLength,omitempty"`
	MinCommonPrefixLength int      `json:"minCommonPrefixLength,omitempty"`
	AllowedAttributes     []string `json:"allowedAttributes,omitempty"`
	JunkTags              []string `json:"junkTags,omitempty"`
	VoidTags              []string `json:"voidTags,omitempty"`
	MainCandidateTags     []string `json:"mainCandidateTags,omitempty"`
	NavigationalTags      []string `json:"navigationalTags,omitempty"`
}

// WithConfigFile loads a Config from a JSON file, applying any field
// present on top of the defaults.
func WithConfigFile(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	var dto configDTO
	if err := json.Unmarshal(content, &dto); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	cfg := WithDefault()
	if dto.MaxPatternLength != 0 {
		cfg = cfg.WithMaxPatternLength(dto.MaxPatternLength)
	}
	if dto.MinCommonPrefixLength != 0 {
		cfg = cfg.WithMinCommonPrefixLength(dto.MinCommonPrefixLength)
	}
	if len(dto.AllowedAttributes) > 0 {
		cfg = cfg.WithAllowedAttributes(dto.AllowedAttributes)
	}
	if len(dto.JunkTags) > 0 {
		cfg = cfg.WithJunkTags(dto.JunkTags)
	}
	if len(dto.VoidTags) > 0 {
		cfg = cfg.WithVoidTags(dto.VoidTags)
	}
	if len(dto.MainCandidateTags) > 0 {
		cfg = cfg.WithMainCandidateTags(dto.MainCandidateTags)
	}
	if len(dto.NavigationalTags) > 0 {
		cfg = cfg.WithNavigationalTags(dto.NavigationalTags)
	}

	return cfg.Build()
}

// WithDefault returns a builder seeded with this engine's own defaults:
// the §6 attribute allow-list, the §4.2 junk-element set, and the
// §4.4/§9 pattern-length bound.
func WithDefault() *Config {
	cfg := Config{
		maxPatternLength:      6,
		minCommonPrefixLength: 2,
		allowedAttributes: []string{
			"href", "src", "alt", "title", "rel", "type", "name",
			"content", "datetime", "value", "colspan", "rowspan",
		},
		junkTags: []string{
			"script", "style", "noscript", "iframe", "svg", "nav",
			"header", "footer", "form", "input", "button", "select",
			"option", "aside", "link", "meta",
		},
		voidTags:          []string{"img", "br", "hr", "input", "meta", "link"},
		mainCandidateTags: []string{"div", "section", "body"},
		navigationalTags:  []string{"nav", "header", "footer", "aside"},
	}
	return &cfg
}

func (c *Config) WithMaxPatternLength(n int) *Config {
	c.maxPatternLength = n
	return c
}

func (c *Config) WithMinCommonPrefixLength(n int) *Config {
	c.minCommonPrefixLength = n
	return c
}

func (c *Config) WithAllowedAttributes(attrs []string) *Config {
	c.allowedAttributes = attrs
	return c
}

func (c *Config) WithJunkTags(tags []string) *Config {
	c.junkTags = tags
	return c
}

func (c *Config) WithVoidTags(tags []string) *Config {
	c.voidTags = tags
	return c
}

func (c *Config) WithMainCandidateTags(tags []string) *Config {
	c.mainCandidateTags = tags
	return c
}

func (c *Config) WithNavigationalTags(tags []string) *Config {
	c.navigationalTags = tags
	return c
}

func (c *Config) Build() (Config, error) {
	if c.maxPatternLength < 2 {
		return Config{}, fmt.Errorf("%w: maxPatternLength must be >= 2", ErrInvalidConfig)
	}
	if c.minCommonPrefixLength < 1 {
		return Config{}, fmt.Errorf("%w: minCommonPrefixLength must be >= 1", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) MaxPatternLength() int { return c.maxPatternLength }

func (c Config) MinCommonPrefixLength() int { return c.minCommonPrefixLength }

func (c Config) AllowedAttributes() []string {
	out := make([]string, len(c.allowedAttributes))
	copy(out, c.allowedAttributes)
	return out
}

func (c Config) JunkTags() []string {
	out := make([]string, len(c.junkTags))
	copy(out, c.junkTags)
	return out
}

func (c Config) VoidTags() []string {
	out := make([]string, len(c.voidTags))
	copy(out, c.voidTags)
	return out
}

func (c Config) MainCandidateTags() []string {
	out := make([]string, len(c.mainCandidateTags))
	copy(out, c.mainCandidateTags)
	return out
}

func (c Config) NavigationalTags() []string {
	out := make([]string, len(c.navigationalTags))
	copy(out, c.navigationalTags)
	return out
}

// AllowedAttributeSet returns the allow-list as a lookup set.
func (c Config) AllowedAttributeSet() map[string]bool {
	set := make(map[string]bool, len(c.allowedAttributes))
	for _, a := range c.allowedAttributes {
		set[a] = true
	}
	return set
}

// JunkTagSet returns the junk-tag set as a lookup set.
func (c Config) JunkTagSet() map[string]bool {
	set := make(map[string]bool, len(c.junkTags))
	for _, t := range c.junkTags {
		set[t] = true
	}
	return set
}

// VoidTagSet returns the void-tag set as a lookup set.
func (c Config) VoidTagSet() map[string]bool {
	set := make(map[string]bool, len(c.voidTags))
	for _, t := range c.voidTags {
		set[t] = true
	}
	return set
}

// MainCandidateTagSet returns the main-candidate-tag set as a lookup set.
func (c Config) MainCandidateTagSet() map[string]bool {
	set := make(map[string]bool, len(c.mainCandidateTags))
	for _, t := range c.mainCandidateTags {
		set[t] = true
	}
	return set
}

// NavigationalTagSet returns the navigational-tag set as a lookup set.
func (c Config) NavigationalTagSet() map[string]bool {
	set := make(map[string]bool, len(c.navigationalTags))
	for _, t := range c.navigationalTags {
		set[t] = true
	}
	return set
}

// Default is the package-level Config every facade operation uses when
// the caller does not supply one of its own.
var Default = func() Config {
	cfg, err := WithDefault().Build()
	if err != nil {
		panic(err)
	}
	return cfg
}()
