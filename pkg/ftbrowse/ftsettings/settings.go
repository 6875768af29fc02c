package ftsettings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filetug/ftbrowse/pkg/fsutils"
)

const UserDir = "~/.ftbrowse"

const configFileName = "config.yaml"

var osUserHomeDir = os.UserHomeDir

var readYAML = fsutils.ReadYAMLFile

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// Colors are tcell color names, e.g. "lightblue" or "#87cefa".
type Colors struct {
	Directory  string `yaml:"directory,omitempty"`
	File       string `yaml:"file,omitempty"`
	Symlink    string `yaml:"symlink,omitempty"`
	SelectedFg string `yaml:"selected_fg,omitempty"`
	SelectedBg string `yaml:"selected_bg,omitempty"`
}

type Config struct {
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	// Resume starts in the directory visited last.
	Resume bool `yaml:"resume,omitempty"`
	// Watch refreshes the listing when the directory changes on disk.
	Watch  bool   `yaml:"watch,omitempty"`
	Colors Colors `yaml:"colors,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Colors: Colors{
			Directory:  "lightblue",
			Symlink:    "lightgreen",
			SelectedFg: "black",
			SelectedBg: "lightblue",
		},
	}
}

// ConfigFilePath returns the default location of config.yaml.
func ConfigFilePath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, configFileName), nil
}

// LoadConfig reads filePath over the defaults. A missing file is only an
// error when required is set.
func LoadConfig(filePath string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if filePath == "" {
		return cfg, nil
	}
	if err := readYAML(filePath, required, &cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", filePath, err)
	}
	return cfg, nil
}
