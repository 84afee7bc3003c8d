// Package config loads textdiff's configuration from a cascade of sources: built-in defaults, the user's config file, the nearest project config file, and environment
// variables, in increasing priority. Later sources override only the keys they set.
//
// Files are YAML (JSON is accepted, being valid YAML). Unknown keys are an error, so typos surface instead of being silently ignored. Missing, unreadable, and empty
// files are skipped.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codalotl/textdiff/internal/diff"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables read by Load.
const (
	EnvContext        = "TEXTDIFF_CONTEXT"
	EnvColor          = "TEXTDIFF_COLOR"
	EnvMaxLines       = "TEXTDIFF_MAX_LINES"
	EnvMaxLineLength  = "TEXTDIFF_MAX_LINE_LENGTH"
	EnvOldLabel       = "TEXTDIFF_OLD_LABEL"
	EnvNewLabel       = "TEXTDIFF_NEW_LABEL"
	EnvCoalesceModify = "TEXTDIFF_COALESCE_MODIFY"
	EnvTabWidth       = "TEXTDIFF_TAB_WIDTH"
	EnvEastAsianWidth = "TEXTDIFF_EAST_ASIAN_WIDTH"
)

// dirName is the directory holding config files, both in the home directory and in projects.
const dirName = ".textdiff"

// fileNames are tried in order within a config directory; the first readable, non-empty one wins.
var fileNames = []string{"config.yaml", "config.yml", "config.json"}

// Config is textdiff's effective configuration.
type Config struct {
	// Context is the number of unchanged lines shown around each hunk. Defaults to 0 (no context).
	Context int `json:"context"`

	// Color is one of "auto", "always", "never". Defaults to "auto".
	Color string `json:"color"`

	// MaxLines and MaxLineLength reject inputs before diffing (0 means unlimited). Defaults to 4000 lines and 2000 characters.
	MaxLines      int `json:"max_lines"`
	MaxLineLength int `json:"max_line_length"`

	// Optional. If set, used as the "---"/"+++" labels when no label flag is given.
	OldLabel string `json:"old_label,omitempty"`
	NewLabel string `json:"new_label,omitempty"`

	// CoalesceModify pairs deleted and inserted lines into modifications.
	CoalesceModify bool `json:"coalesce_modify"`

	// TabWidth expands tabs to this many spaces in --pretty output. 0 keeps tabs.
	TabWidth int `json:"tab_width"`

	// EastAsianWidth counts ambiguous-width characters as 2 cells when aligning tables. Set it for CJK locales.
	EastAsianWidth bool `json:"east_asian_width"`
}

// Source is one layer that contributed to a loaded Config.
type Source struct {
	Type       string `json:"type"`                 // "default", "file", or "env".
	Identifier string `json:"identifier,omitempty"` // File path for "file"; empty otherwise.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Color:         ColorAuto,
		MaxLines:      4000,
		MaxLineLength: 2000,
	}
}

// Limits returns the input-size limits of c.
func (c Config) Limits() diff.Limits {
	return diff.Limits{MaxLines: c.MaxLines, MaxLineLength: c.MaxLineLength}
}

// LoadOptions locate the sources read by Load.
type LoadOptions struct {
	HomeDir string              // If empty, the user config file is skipped.
	WorkDir string              // Start of the upward search for a project config. If empty, the project config is skipped.
	Getenv  func(string) string // If nil, environment variables are ignored.
}

// Load builds the effective Config from defaults, <HomeDir>/.textdiff/config.yaml, the nearest <dir>/.textdiff/config.yaml at or above WorkDir, and environment
// variables, and validates it. It also returns the sources that contributed, lowest priority first.
func Load(opts LoadOptions) (Config, []Source, error) {
	cfg := Default()
	sources := []Source{{Type: "default"}}

	var homeFile string
	if opts.HomeDir != "" {
		homeFile = firstConfigFile(filepath.Join(opts.HomeDir, dirName))
	}
	var projectFile string
	if opts.WorkDir != "" {
		projectFile = nearestConfigFile(opts.WorkDir)
	}
	if projectFile == homeFile {
		projectFile = ""
	}

	for _, path := range []string{homeFile, projectFile} {
		if path == "" {
			continue
		}
		l, err := readFile(path)
		if err != nil {
			return Config{}, nil, fmt.Errorf("load configuration: %s: %w", path, err)
		}
		l.apply(&cfg)
		sources = append(sources, Source{Type: "file", Identifier: path})
	}

	if opts.Getenv != nil {
		l, set, err := readEnv(opts.Getenv)
		if err != nil {
			return Config{}, nil, fmt.Errorf("load configuration: %w", err)
		}
		if set {
			l.apply(&cfg)
			sources = append(sources, Source{Type: "env"})
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, nil, err
	}
	return cfg, sources, nil
}

// Validate returns an error describing the first invalid setting of cfg.
func Validate(cfg Config) error {
	if cfg.Context < 0 {
		return fmt.Errorf("invalid configuration: context must be >= 0 (got %d)", cfg.Context)
	}
	if cfg.MaxLines < 0 {
		return fmt.Errorf("invalid configuration: max_lines must be >= 0 (got %d)", cfg.MaxLines)
	}
	if cfg.MaxLineLength < 0 {
		return fmt.Errorf("invalid configuration: max_line_length must be >= 0 (got %d)", cfg.MaxLineLength)
	}
	if cfg.TabWidth < 0 {
		return fmt.Errorf("invalid configuration: tab_width must be >= 0 (got %d)", cfg.TabWidth)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid configuration: color must be one of auto, always, never (got %q)", cfg.Color)
	}
	return nil
}

// WriteJSON writes cfg and the sources it was loaded from as indented JSON.
func WriteJSON(w io.Writer, cfg Config, sources []Source) error {
	out := struct {
		Config
		Sources []Source `json:"sources"`
	}{cfg, sources}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// layer holds the keys one source sets; nil means unset.
type layer struct {
	Context        *int    `yaml:"context"`
	Color          *string `yaml:"color"`
	MaxLines       *int    `yaml:"max_lines"`
	MaxLineLength  *int    `yaml:"max_line_length"`
	OldLabel       *string `yaml:"old_label"`
	NewLabel       *string `yaml:"new_label"`
	CoalesceModify *bool   `yaml:"coalesce_modify"`
	TabWidth       *int    `yaml:"tab_width"`
	EastAsianWidth *bool   `yaml:"east_asian_width"`
}

func (l layer) apply(cfg *Config) {
	if l.Context != nil {
		cfg.Context = *l.Context
	}
	if l.Color != nil {
		cfg.Color = strings.ToLower(strings.TrimSpace(*l.Color))
	}
	if l.MaxLines != nil {
		cfg.MaxLines = *l.MaxLines
	}
	if l.MaxLineLength != nil {
		cfg.MaxLineLength = *l.MaxLineLength
	}
	if l.OldLabel != nil {
		cfg.OldLabel = *l.OldLabel
	}
	if l.NewLabel != nil {
		cfg.NewLabel = *l.NewLabel
	}
	if l.CoalesceModify != nil {
		cfg.CoalesceModify = *l.CoalesceModify
	}
	if l.TabWidth != nil {
		cfg.TabWidth = *l.TabWidth
	}
	if l.EastAsianWidth != nil {
		cfg.EastAsianWidth = *l.EastAsianWidth
	}
}

func readFile(path string) (layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layer{}, err
	}

	var l layer
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return layer{}, err
	}
	return l, nil
}

func readEnv(getenv func(string) string) (layer, bool, error) {
	var l layer
	set := false

	intVar := func(name string, dst **int) error {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: cannot parse int from %q", name, v)
		}
		*dst = &n
		set = true
		return nil
	}
	boolVar := func(name string, dst **bool) error {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: cannot parse bool from %q", name, v)
		}
		*dst = &b
		set = true
		return nil
	}
	stringVar := func(name string, dst **string) {
		if v := getenv(name); v != "" {
			*dst = &v
			set = true
		}
	}

	if err := intVar(EnvContext, &l.Context); err != nil {
		return layer{}, false, err
	}
	if err := intVar(EnvMaxLines, &l.MaxLines); err != nil {
		return layer{}, false, err
	}
	if err := intVar(EnvMaxLineLength, &l.MaxLineLength); err != nil {
		return layer{}, false, err
	}
	stringVar(EnvColor, &l.Color)
	stringVar(EnvOldLabel, &l.OldLabel)
	stringVar(EnvNewLabel, &l.NewLabel)

	if err := intVar(EnvTabWidth, &l.TabWidth); err != nil {
		return layer{}, false, err
	}
	if err := boolVar(EnvCoalesceModify, &l.CoalesceModify); err != nil {
		return layer{}, false, err
	}
	if err := boolVar(EnvEastAsianWidth, &l.EastAsianWidth); err != nil {
		return layer{}, false, err
	}

	return l, set, nil
}

// firstConfigFile returns the first readable, non-empty config file in dir, or "".
func firstConfigFile(dir string) string {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if data, err := os.ReadFile(path); err == nil && strings.TrimSpace(string(data)) != "" {
			return path
		}
	}
	return ""
}

// nearestConfigFile searches start and its ancestors for a .textdiff config file. The search stops at the filesystem root.
func nearestConfigFile(start string) string {
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}
	for dir := start; ; dir = filepath.Dir(dir) {
		if path := firstConfigFile(filepath.Join(dir, dirName)); path != "" {
			return path
		}
		if filepath.Dir(dir) == dir {
			return ""
		}
	}
}
