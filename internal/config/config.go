// Package config loads libcat settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/libcat/internal/render"
	"github.com/aretw0/libcat/pkg/core"
)

// DefaultFile is searched for, from the working directory upwards, when no path is given.
const DefaultFile = "libcat.yaml"

// EnvFormat overrides the output format.
const EnvFormat = "LIBCAT_FORMAT"

// Config holds the user tunable settings.
type Config struct {
	// DateLayout is the Go time layout used to read and print dates.
	DateLayout string `yaml:"date_layout"`
	// DateHint is shown to the user in the release date prompt.
	// When unset it is derived from DateLayout.
	DateHint string `yaml:"date_hint"`
	// Format selects the catalog renderer: table, yaml or json.
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DateLayout: core.ISODate,
		DateHint:   "YYYY-MM-DD",
		Format:     render.FormatTable,
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path searches for DefaultFile from the working directory upwards
// and falls back to the defaults when none exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.DateHint = ""

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		path, err = Find(wd)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return Config{}, err
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if cfg.DateHint == "" {
		cfg.DateHint = HintFor(cfg.DateLayout)
	}

	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		cfg.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var hintReplacer = strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD")

// HintFor describes a date layout in the YYYY/MM/DD notation shown to users,
// e.g. "02/01/2006" becomes "DD/MM/YYYY".
func HintFor(layout string) string {
	return hintReplacer.Replace(layout)
}

var referenceDate = time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)

// Validate checks the format name and that DateLayout can round-trip a date.
func (c Config) Validate() error {
	if !slices.Contains(render.Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %v)", c.Format, render.Formats)
	}
	if c.DateLayout == "" {
		return errors.New("date_layout cannot be empty")
	}
	parsed, err := time.Parse(c.DateLayout, referenceDate.Format(c.DateLayout))
	if err != nil || !parsed.Equal(referenceDate) {
		return fmt.Errorf("date_layout %q does not describe a full calendar date", c.DateLayout)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
