package commands

import (
	"io/fs"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/color"
	"github.com/TouchBistro/giveup/config"
	"github.com/TouchBistro/giveup/errors"
	"github.com/TouchBistro/giveup/hint"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	color      string
}

func NewRootCommand(c *cli.Container, version string) *cobra.Command {
	var opts rootOptions
	rootCmd := &cobra.Command{
		Use:     "giveup",
		Version: version,
		Short:   "giveup runs commands and explains their failures to users",
		CompletionOptions: cobra.CompletionOptions{
			// Cobra generates an `completion` command by default.
			// Disable this since we handle completions ourselves.
			DisableDefaultCmd: true,
		},
		// cobra prints errors returned from RunE by default. Disable that since we handle errors ourselves.
		SilenceErrors: true,
		// cobra prints command usage by default if RunE returns an error.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// check and init operate on the config file itself so they must not fail if it is broken.
			var cfg config.Config
			var cfgErr error
			switch cmd.Name() {
			case "check", "init":
			default:
				cfg, cfgErr = config.Read(opts.configPath)
			}
			if cfgErr != nil && !errors.Is(cfgErr, fs.ErrNotExist) {
				return &cli.ExitError{
					Message: "Failed to load config",
					Err:     hint.WithExample(hint.Wrap(cfgErr, "Check the config file for errors"), "giveup check"),
				}
			}
			c.Config = cfg
			c.Verbose = opts.verbose || cfg.Verbose

			// Initialize logging
			c.Logger = cli.NewLogger(c.Stderr, c.Verbose)
			c.Exiter.Logger = c.Logger

			mode := cfg.ColorMode()
			if cmd.Flags().Changed("color") {
				var err error
				mode, err = color.ParseMode(opts.color)
				if err != nil {
					return &cli.ExitError{
						Message: "Invalid flag --color",
						Err:     hint.WithExample(hint.Wrap(err, "Pass one of auto, always, never"), "--color never"),
					}
				}
			}
			c.Exiter.Color = mode

			if cfgErr != nil {
				if opts.configPath != "" {
					c.Warn("Config file %s does not exist, using defaults", opts.configPath)
				}
				c.Logger.WithError(cfgErr).Debug("No config file found")
			}
			return nil
		},
	}

	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.StringVar(&opts.configPath, "config", "", "Path to the config file (default ~/"+config.FileName+")")
	persistentFlags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	persistentFlags.StringVar(&opts.color, "color", "auto", "When to style output: auto, always, never")
	rootCmd.AddCommand(
		newCheckCommand(c, &opts),
		newCompletionsCommand(c),
		newInitCommand(c, &opts),
		newRunCommand(c),
	)
	return rootCmd
}

// configPath resolves the config file path a command operates on.
// An explicit argument wins over --config, which wins over the default location.
func configPath(opts *rootOptions, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultPath()
}
