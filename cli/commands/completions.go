package commands

import (
	"fmt"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/hint"
	"github.com/spf13/cobra"
)

func newCompletionsCommand(c *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:       "completions <shell>",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh"},
		Short:     "Generate shell completions",
		Long: `Generates a shell completion script and outputs it to standard output.

Supported shells are: bash, zsh.

For example to generate and use bash completions:

	giveup completions bash > /usr/local/etc/bash_completion.d/giveup.bash
	source /usr/local/etc/bash_completion.d/giveup.bash`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Provide an empty function to override the one in the root command.
			// We want to skip all pre-run steps for this command since none of that is relevant.
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			var err error
			switch shell {
			case "bash":
				err = cmd.Root().GenBashCompletion(c.Stdout)
			case "zsh":
				err = cmd.Root().GenZshCompletion(c.Stdout)
			}
			if err != nil {
				return &cli.ExitError{
					Message: fmt.Sprintf("Failed to generate %s completions", shell),
					Err:     hint.Wrap(err, "Check that standard output is writable"),
				}
			}
			return nil
		},
	}
}
