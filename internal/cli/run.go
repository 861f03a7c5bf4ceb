package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vk/sentproc/internal/app"
)

func newRunCommand(global *globalFlags) *cobra.Command {
	var (
		input        string
		processors   []string
		outputSuffix string
		workers      int
		overwrite    bool
	)

	cmd := &cobra.Command{
		Use:   "run [INPUT]",
		Short: "Process a text file through a chain of plugins",
		Example: `  sentproc run sentences.txt -p replace_tags,replace_urls
  sentproc run --config run.hcl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			overrides := global.overrides()
			overrides.Input = input
			if len(args) == 1 {
				if input != "" && input != args[0] {
					return usageError(fmt.Errorf("input given both as argument %q and --input %q", args[0], input))
				}
				overrides.Input = args[0]
			}
			if cmd.Flags().Changed("processors") {
				overrides.Processors = append([]string{}, processors...)
			}
			overrides.OutputSuffix = outputSuffix
			overrides.Workers = workers
			if cmd.Flags().Changed("overwrite") {
				overrides.Overwrite = &overwrite
			}

			cfg, err := app.LoadConfig(ctx, global.configPath, overrides)
			if err != nil {
				return usageError(err)
			}
			if err := cfg.Normalize(); err != nil {
				return usageError(err)
			}

			a, err := app.New(ctx, cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			res, err := a.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d lines to %s\n", res.Lines, res.OutputPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "Path to the input text file, one sentence per line.")
	f.StringSliceVarP(&processors, "processors", "p", nil, "Ordered, comma-separated plugin names to apply.")
	f.StringVar(&outputSuffix, "output-suffix", "", "Suffix appended to the input path to name the output (default \".processed\").")
	f.IntVarP(&workers, "workers", "w", 0, "Number of goroutines transforming lines (default 1).")
	f.BoolVar(&overwrite, "overwrite", true, "Replace an existing output file.")
	return cmd
}
