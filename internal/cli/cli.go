package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/sentproc/internal/config"
)

// Version is overridden by ldflags.
var Version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	pluginsPath string
	logLevel    string
	logFormat   string
}

// NewRootCommand builds the sentproc command tree. Command output goes to
// outW; logs and errors go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "sentproc",
		Short: "sentproc - run sentences through a chain of text plugins",
		Long: `sentproc reads a text file with one sentence per line, applies an ordered
chain of named plugins to every line and writes the result next to the
input as <input>.processed.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.validate()
		},
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to an HCL or YAML run configuration file.")
	pf.StringVar(&flags.pluginsPath, "plugins-path", "", "Directory of declarative plugin definitions (.hcl).")
	pf.StringVar(&flags.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")

	rootCmd.AddCommand(newRunCommand(flags))
	rootCmd.AddCommand(newPluginsCommand(flags))
	return rootCmd
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (f *globalFlags) validate() error {
	f.logLevel = strings.ToLower(f.logLevel)
	switch f.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return usageError(fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}
	f.logFormat = strings.ToLower(f.logFormat)
	switch f.logFormat {
	case "", "text", "json":
	default:
		return usageError(fmt.Errorf("invalid log-format: must be 'text' or 'json'"))
	}
	return nil
}

// overrides returns the configuration carried by the global flags.
func (f *globalFlags) overrides() *config.Config {
	return &config.Config{
		PluginsPath: f.pluginsPath,
		LogLevel:    f.logLevel,
		LogFormat:   f.logFormat,
	}
}
