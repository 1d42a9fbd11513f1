package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stepdoc/pkg/errors"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.toml"

// DefaultConfigPath returns $XDG_CONFIG_HOME/stepdoc/config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate config directory")
	}
	return filepath.Join(dir, "stepdoc", ConfigFileName), nil
}

// LoadConfig reads Options from the TOML file at path. An empty path reads
// the default file, which may be missing. A missing explicit path is an
// error, as is any key Options does not know.
func LoadConfig(path string) (Options, error) {
	var opts Options
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return opts, err
		}
		path = p
	}
	if err := errors.ValidatePath(path); err != nil {
		return opts, err
	}

	md, err := toml.DecodeFile(path, &opts)
	if os.IsNotExist(err) {
		if explicit {
			return opts, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return opts, nil
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return opts, errors.New(errors.ErrCodeInvalidFormat, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}
