package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "stevedore"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for configuration files.
//
//	Linux:   $XDG_CONFIG_HOME/stevedore or ~/.config/stevedore
//	macOS:   ~/Library/Application Support/stevedore
func Config() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the settings file.
//
//	Linux:   $XDG_CONFIG_HOME/stevedore/settings.yaml
//	macOS:   ~/Library/Application Support/stevedore/settings.yaml
func SettingsFile() string {
	return filepath.Join(Config(), "settings.yaml")
}
