package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hullworks/stevedore/internal/paths"
)

// Engine connection defaults read from the settings file.
//
// Values left empty fall back to the Docker environment (DOCKER_HOST and
// friends) and to version negotiation with the daemon. Command-line flags
// override the file.
type Settings struct {
	Host       string `yaml:"host"`        // Engine endpoint, e.g. "unix:///var/run/docker.sock".
	APIVersion string `yaml:"api_version"` // Pinned engine API version; empty negotiates.
}

// Loads settings from the default location.
//
// A missing file is not an error; it yields zero-valued settings.
func Load() (Settings, error) {
	return LoadFile(paths.SettingsFile())
}

// Loads settings from the given file.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file %q: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %q: %w", path, err)
	}

	return s, nil
}
