package msbuild

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// OptionsFilename is the optional per-folder scan configuration file.
const OptionsFilename = "depscope.yaml"

// Options configures a scan of one root folder.
type Options struct {
	// Exclude lists directory name patterns to skip while walking, in
	// addition to the built-in excludes.
	Exclude []string `yaml:"exclude"`
}

// loadOptions reads OptionsFilename from the scan root. A missing file
// yields zero options.
func loadOptions(root string) (Options, error) {
	data, err := os.ReadFile(filepath.Join(root, OptionsFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return Options{}, nil
	}
	if err != nil {
		return Options{}, zerr.Wrap(err, "failed to read scan options")
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, zerr.Wrap(err, "failed to parse scan options")
	}
	return opts, nil
}
