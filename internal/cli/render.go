package cli

import (
	"github.com/spf13/cobra"

	"github.com/brdgme/markup/pkg/pipeline"
	"github.com/brdgme/markup/pkg/render"
)

type renderFlags struct {
	players string
	format  string
	output  string
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a template",
		Long: `Render a markup template for a roster of players.

The template is read from the named file, or from stdin when the file is
omitted or "-". Output goes to stdout unless --output is given.`,
		Example: `  markup render board.tmpl --players mick,steve
  echo '{{player 0}} wins' | markup render --players mick --format html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.players, "players", "p", "", "comma-separated player names, in turn order")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: "+render.FormatNames())
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even if the output is cached")

	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, f renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	src, err := readTemplate(cmd, args)
	if err != nil {
		return err
	}

	format := f.format
	if format == "" {
		format = c.Config.Format
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Template: src,
		Players:  c.players(cmd, f.players),
		Format:   format,
		Refresh:  f.refresh,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	prog.done("render complete", "format", res.Format, "cache_hit", res.CacheHit)

	if err := writeOutput(cmd, f.output, res.Output); err != nil {
		return err
	}
	if f.output != "" && f.output != "-" {
		printStats(string(res.Format), len(res.Output), res.CacheHit)
		if res.Format == render.FormatANSI {
			printNextStep("Preview it", "markup preview "+templateArg(args))
		}
	}
	return nil
}

func templateArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func formatCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
