package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirtotal/internal/logging"
	"github.com/idelchi/dirtotal/internal/walker"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Command builds the root command. Output goes to cmd.OutOrStdout and logs to cmd.ErrOrStderr.
func (c CLI) Command() *cobra.Command {
	var options walker.Options

	allowedOutputs := []string{"table", "json"}
	allowedLogFormats := []string{"", logging.FormatText, logging.FormatJSON}

	cmd := &cobra.Command{
		Use:   "dirtotal [flags] [path]",
		Short: "Compute the total size of a directory tree",
		Long: heredoc.Doc(`
			dirtotal sums the sizes of all regular files below a directory.

			Sibling subdirectories are listed in parallel on a fixed-size worker pool.
			Directories that cannot be read count as empty and do not stop the walk.
			Symbolic links are not followed.

			Positional Arguments:
			  path                   Directory to measure. Defaults to current directory if not specified.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				//nolint:forbidigo // Version output to console
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if !slices.Contains(allowedLogFormats, options.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", options.LogFormat, allowedLogFormats[1:])
			}

			if options.Workers < 1 {
				return errors.New("workers must be at least 1")
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerFlags(cmd.Flags(), &options)

	return cmd
}

func registerFlags(flags *pflag.FlagSet, options *walker.Options) {
	flags.SortFlags = false

	flags.IntVarP(&options.Workers, "workers", "w", walker.DefaultWorkers, "Number of directories listed in parallel")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVar(&options.Verify, "verify", false, "Cross-check the total with an independent reference walk")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.StringVar(&options.LogFormat, "log-format", "",
		"Log format: text or json (default: text on a terminal, json otherwise)")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
