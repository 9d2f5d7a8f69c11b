// Package config handles reading and writing the giveup config file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/TouchBistro/giveup/color"
	"github.com/TouchBistro/giveup/errors"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file in the user's home directory.
const FileName = ".giveuprc.yml"

// Config is the user's giveup configuration.
type Config struct {
	// Color is when output should be styled, one of auto, always, never.
	Color string `yaml:"color"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// ColorMode returns the parsed Color field.
// Invalid values are treated as auto, use Validate to detect them.
func (c Config) ColorMode() color.Mode {
	mode, err := color.ParseMode(c.Color)
	if err != nil {
		return color.Auto
	}
	return mode
}

// Validate checks c for problems. All problems found are returned as an errors.List.
func (c Config) Validate() error {
	const op = errors.Op("config.Config.Validate")
	var errs errors.List
	if _, err := color.ParseMode(c.Color); err != nil {
		errs = append(errs, errors.New(errors.Invalid, "invalid value for color", op, err))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefaultPath returns the path to the config file in the user's home directory.
func DefaultPath() (string, error) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New(errors.Internal, "unable to find user home directory", errors.Op("config.DefaultPath"), err)
	}
	return filepath.Join(homedir, FileName), nil
}

// Read reads the config file at path. If path is empty DefaultPath is used.
//
// If the file does not exist, the default config is returned along with an
// error of kind errors.NotFound wrapping fs.ErrNotExist, so callers can choose
// to ignore it.
func Read(path string) (Config, error) {
	const op = errors.Op("config.Read")
	var cfg Config
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, errors.New(errors.NotFound, fmt.Sprintf("no config file at %s", path), op, err)
	}
	if err != nil {
		return cfg, errors.New(errors.IO, op, pkgerrors.Wrapf(err, "failed to read %s", path))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// A file with no documents, such as one that is empty or only
		// has comments, is a valid config.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, errors.New(errors.Invalid, op, pkgerrors.Wrapf(err, "couldn't read yaml file at %s", path))
	}
	return cfg, nil
}

// Init writes the default config template to path.
// It fails if a file already exists at path.
func Init(path string) error {
	const op = errors.Op("config.Init")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return errors.New(errors.Invalid, "config file already exists", op, err)
	}
	if err != nil {
		return errors.New(errors.IO, op, pkgerrors.Wrapf(err, "failed to create %s", path))
	}
	defer f.Close()
	if _, err := f.WriteString(rcTemplate); err != nil {
		return errors.New(errors.IO, op, pkgerrors.Wrapf(err, "failed to write %s", path))
	}
	return nil
}

const rcTemplate = `# When to style error messages: auto, always or never
# auto styles output only when writing to a terminal
color: auto
# Enable debug logging
verbose: false
`
