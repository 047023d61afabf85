// Package config loads varbindgen.toml, the optional project-level
// generator configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the configuration file name looked up in the working
// directory when no explicit path is given.
const DefaultFile = "varbindgen.toml"

// Config is the generator configuration.
type Config struct {
	// Patterns are the package patterns scanned for annotated fields.
	Patterns []string `toml:"patterns"`
	// Suffix overrides the generated file name suffix.
	Suffix string `toml:"suffix"`
	// SortFold makes generated bindings sort option names
	// case-insensitively.
	SortFold bool `toml:"sort_fold"`
	// DryRun prints generated files instead of writing them.
	DryRun bool `toml:"dry_run"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Patterns: []string{"./..."},
	}
}

// Load reads a TOML configuration file. A missing file at the default
// location is not an error; the defaults are returned instead.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if len(meta.Undecoded()) > 0 {
		return Config{}, fmt.Errorf("%s: unknown configuration keys: %v", path, meta.Undecoded())
	}

	if len(cfg.Patterns) == 0 {
		cfg.Patterns = Default().Patterns
	}

	return cfg, nil
}
