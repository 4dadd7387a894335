package config

import (
	"path/filepath"

	"github.com/arthur-debert/translit/pkg/errors"
)

// Config is the effective configuration of one run
type Config struct {
	Table   Table   `koanf:"table" toml:"table"`
	Rename  Rename  `koanf:"rename" toml:"rename"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Table locates and parses the definition file
type Table struct {
	Path          string `koanf:"path" toml:"path"`
	ExcludeMarker string `koanf:"exclude_marker" toml:"exclude_marker"`
}

// Rename holds the traversal policy
type Rename struct {
	Layer        int  `koanf:"layer" toml:"layer"`
	ExcludeDirs  bool `koanf:"exclude_dirs" toml:"exclude_dirs"`
	ExcludeFiles bool `koanf:"exclude_files" toml:"exclude_files"`
	DryRun       bool `koanf:"dry_run" toml:"dry_run"`
}

type Logging struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Validate checks values that no layer is allowed to produce
func (c *Config) Validate() error {
	if c.Table.Path == "" {
		return errors.New(errors.ErrConfigValid, "table.path cannot be empty")
	}
	if c.Rename.Layer < 0 {
		return errors.New(errors.ErrConfigValid, "layer cannot be less than 0").
			WithDetail("layer", c.Rename.Layer)
	}
	if c.Logging.Verbosity < 0 {
		return errors.New(errors.ErrConfigValid, "verbosity cannot be negative").
			WithDetail("verbosity", c.Logging.Verbosity)
	}
	return nil
}

// TablePath returns the definition file path, resolving a relative one
// against workDir
func (c *Config) TablePath(workDir string) string {
	if filepath.IsAbs(c.Table.Path) {
		return filepath.Clean(c.Table.Path)
	}
	return filepath.Join(workDir, c.Table.Path)
}
