package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultListsFile is the default lists-override file name.
const DefaultListsFile = ".docscan"

// ErrListsFileNotFound is returned when the lists file does not exist.
var ErrListsFileNotFound = errors.New("lists file not found")

// File is the on-disk shape of the lists-override file.
// Entries extend (never replace) the built-in lists, so a deployment can
// add its own blocked or trusted domains without re-declaring the defaults.
type File struct {
	// Lists holds extra domain list entries.
	Lists Lists `yaml:"lists"`
}

// LoadListsFile loads domain list extensions from a YAML file.
// If the file does not exist, it returns ErrListsFileNotFound. Callers
// should treat that as fatal only when the path was explicitly specified
// by the user.
func LoadListsFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrListsFileNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// FindListsFile searches for the lists file in the following order:
//  1. If path is specified, use it directly
//  2. Look for .docscan in the current directory
//  3. Look for .docscan in the user's home directory
//
// Returns the path to the lists file if found, or empty string if not found.
func FindListsFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdFile := filepath.Join(cwd, DefaultListsFile)
		if _, err := os.Stat(cwdFile); err == nil {
			return cwdFile
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeFile := filepath.Join(home, DefaultListsFile)
		if _, err := os.Stat(homeFile); err == nil {
			return homeFile
		}
	}

	return ""
}
