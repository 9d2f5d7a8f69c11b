package commands

import (
	"io/fs"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/config"
	"github.com/TouchBistro/giveup/errors"
	"github.com/TouchBistro/giveup/hint"
	"github.com/spf13/cobra"
)

func newInitCommand(c *cli.Container, rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Create a config file",
		Long: `Creates a giveup config file with the default settings.

By default the config file is created in the home directory.
An existing config file is never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(rootOpts, args)
			if err != nil {
				return &cli.ExitError{Message: "Failed to resolve config file", Err: err}
			}
			c.Logger.WithField("path", path).Debug("Creating config file")

			if err := config.Init(path); err != nil {
				if errors.Is(err, fs.ErrExist) {
					err = hint.WithExample(hint.Wrap(err, "Remove the existing file to start over"), "rm "+path)
				}
				return &cli.ExitError{Message: "Failed to create configuration file", Err: err}
			}
			c.Success("Created config file at %s", path)
			return nil
		},
	}
}
