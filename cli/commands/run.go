package commands

import (
	"fmt"
	"os/exec"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/errors"
	"github.com/TouchBistro/giveup/hint"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultRunMessage = "Command failed"

type runOptions struct {
	message string
	hint    string
	example string
}

func newRunCommand(c *cli.Container) *cobra.Command {
	var opts runOptions
	runCmd := &cobra.Command{
		Use:   "run [flags] [--] <command> [args...]",
		Args:  cobra.MinimumNArgs(1),
		Short: "Run a command and explain its failure",
		Long: `Runs a command with the standard streams of giveup attached.

If the command fails, the message, the reason for the failure and the hint
are written to stderr and giveup exits with status 1.

Examples:

Explain how to fix a failed deploy:

	giveup run -m "Deploy failed" --hint "Log in to AWS first" --example "aws sso login" -- ./deploy.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			const op = errors.Op("commands.run")
			if opts.hint == "" && cmd.Flags().Changed("example") {
				return &cli.ExitError{
					Message: "Invalid flags",
					Err: hint.WithExample(
						hint.Wrap(errors.New(errors.Invalid, "--example requires --hint", op), "Pass a hint along with the example"),
						`--hint "Log in first" --example "aws sso login"`,
					),
				}
			}

			name, cmdArgs := args[0], args[1:]
			c.Logger.WithFields(logrus.Fields{"command": name, "args": cmdArgs}).Debug("Running command")
			err := runCommand(c, cmd, name, cmdArgs)
			if err == nil {
				c.Logger.WithField("command", name).Debug("Command succeeded")
				return nil
			}

			err = errors.New(fmt.Sprintf("%s exited unsuccessfully", name), op, err)
			if opts.hint != "" {
				err = hint.Wrap(err, opts.hint)
				if cmd.Flags().Changed("example") {
					err = hint.WithExample(err, opts.example)
				}
			}
			return &cli.ExitError{Message: opts.message, Err: err}
		},
	}

	flags := runCmd.Flags()
	// Everything after the command name belongs to the command.
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.message, "message", "m", defaultRunMessage, "Message shown if the command fails")
	flags.StringVar(&opts.hint, "hint", "", "Hint shown to help fix the failure")
	flags.StringVar(&opts.example, "example", "", "Example of the action recommended by the hint")
	return runCmd
}

func runCommand(c *cli.Container, cmd *cobra.Command, name string, args []string) error {
	ex := exec.CommandContext(cmd.Context(), name, args...)
	ex.Stdin = c.Stdin
	ex.Stdout = c.Stdout
	ex.Stderr = c.Stderr
	if err := ex.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errors.New(errors.NotFound, fmt.Sprintf("command %s", name), errors.Op("commands.runCommand"), err)
		}
		return err
	}
	return nil
}
