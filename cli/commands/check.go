package commands

import (
	"fmt"
	"io/fs"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/config"
	"github.com/TouchBistro/giveup/errors"
	"github.com/TouchBistro/giveup/hint"
	"github.com/spf13/cobra"
)

func newCheckCommand(c *cli.Container, rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Check a config file for errors",
		Long: `Checks that a giveup config file exists and is valid.

By default the config file in the home directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(rootOpts, args)
			if err != nil {
				return &cli.ExitError{Message: "Failed to resolve config file", Err: err}
			}
			c.Logger.WithField("path", path).Debug("Checking config file")

			cfg, err := config.Read(path)
			if errors.Is(err, fs.ErrNotExist) {
				return &cli.ExitError{
					Message: "Missing configuration file",
					Err:     hint.WithExample(hint.Wrap(err, "Create a configuration file"), "giveup init"),
				}
			}
			if err != nil {
				var e *errors.Error
				if errors.As(err, &e) && e.Kind == errors.IO {
					return &cli.ExitError{
						Message: "Unreadable configuration file",
						Err:     hint.Wrap(err, fmt.Sprintf("Check that %s is a file you have permission to read", path)),
					}
				}
				return &cli.ExitError{
					Message: "Invalid configuration file",
					Err:     hint.Wrap(err, fmt.Sprintf("Fix the syntax errors in %s", path)),
				}
			}
			if err := cfg.Validate(); err != nil {
				return &cli.ExitError{
					Message: "Invalid configuration file",
					Err:     hint.WithExample(hint.Wrap(err, "Set color to one of auto, always, never"), "color: auto"),
				}
			}
			c.Success("%s is valid", path)
			return nil
		},
	}
}
