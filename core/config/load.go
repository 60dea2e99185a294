package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ErrExists is returned by Initialize if a configuration is already present.
var ErrExists = errors.New("configuration already exists")

// Load reads the configuration at path from fs. Fields missing from the file
// keep their default values. An empty path returns the defaults.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	out := Default()
	out.configFs = fs
	if path == "" {
		return out, nil
	}

	// If given a directory, look for the config file inside it.
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return out, nil
}

// Initialize writes the default configuration into dir and returns its path.
func Initialize(fs afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, ConfigurationName)
	switch _, err := fs.Stat(path); {
	case err == nil:
		return path, ErrExists
	case !errors.Is(err, os.ErrNotExist):
		return path, err
	}

	if err := fs.MkdirAll(dir, 0700); err != nil {
		return path, err
	}
	return path, afero.WriteFile(fs, path, defaultConfigData, 0600)
}
