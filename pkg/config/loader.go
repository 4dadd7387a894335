package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks the environment variables read as configuration
	EnvPrefix = "TRANSLIT_"

	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".translit.toml"
)

// Sources lists the layers above the embedded defaults. Empty paths are
// skipped, as are files that do not exist.
type Sources struct {
	UserFile    string
	ProjectFile string

	// Env enables the TRANSLIT_* layer
	Env bool

	// Overrides are flat dotted keys ("rename.layer") applied last
	Overrides map[string]interface{}
}

// DefaultSources returns the standard layers for a run in workDir
func DefaultSources(workDir string) Sources {
	return Sources{
		UserFile:    UserConfigPath(),
		ProjectFile: filepath.Join(workDir, ProjectFileName),
		Env:         true,
	}
}

// UserConfigPath returns $XDG_CONFIG_HOME/translit/config.toml
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "translit", "config.toml")
}

// Load merges the layers of src over the defaults and validates the result
func Load(src Sources) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User and project files
	for _, path := range []string{src.UserFile, src.ProjectFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Env vars
	if src.Env {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Explicit overrides
	if len(src.Overrides) > 0 {
		if err := k.Load(confmap.Provider(src.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// boolKeys accept yes/y and no/n from the environment, like the CLI flags
var boolKeys = map[string]bool{
	"rename.exclude_dirs":  true,
	"rename.exclude_files": true,
	"rename.dry_run":       true,
}

func envKeyValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if !boolKeys[key] {
		return key, value
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y":
		return key, "true"
	case "no", "n":
		return key, "false"
	}
	return key, value
}

// envKey maps TRANSLIT_RENAME_EXCLUDE_DIRS to rename.exclude_dirs: the
// first underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
