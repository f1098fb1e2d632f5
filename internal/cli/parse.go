package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brdgme/markup/pkg/pipeline"
	"github.com/brdgme/markup/pkg/render"
)

// Tree dump formats.
const (
	treeJSON = "json"
	treeDOT  = "dot"
	treeSVG  = "svg"
)

type parseFlags struct {
	format      string
	players     string
	transformed bool
	output      string
	noCache     bool
}

// parseCommand creates the parse command, which dumps a template's
// document tree for debugging.
func (c *CLI) parseCommand() *cobra.Command {
	var f parseFlags

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Dump a template's document tree",
		Long: `Parse a template and print its document tree.

JSON is the default. DOT and SVG draw the tree as a graph, with layout
directives drawn dashed.`,
		Example: `  markup parse board.tmpl
  markup parse board.tmpl --transformed --players mick,steve
  markup parse board.tmpl --format svg -o tree.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", treeJSON, "dump format: json, dot or svg")
	cmd.Flags().StringVarP(&f.players, "players", "p", "", "comma-separated player names (with --transformed)")
	cmd.Flags().BoolVarP(&f.transformed, "transformed", "t", false, "dump the tree after layout")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the cache")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{treeJSON, treeDOT, treeSVG}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, args []string, f parseFlags) error {
	ctx := cmd.Context()

	src, err := readTemplate(cmd, args)
	if err != nil {
		return err
	}
	players := c.players(cmd, f.players)

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var out []byte
	switch f.format {
	case treeJSON:
		data, hit, err := runner.Tree(ctx, pipeline.TreeOptions{
			Template:    src,
			Players:     players,
			Transformed: f.transformed,
		})
		if err != nil {
			return err
		}
		c.Logger.Debug("dumped tree", "cache_hit", hit)
		out = append(data, '\n')

	case treeDOT, treeSVG:
		nodes, err := runner.Parse(ctx, src)
		if err != nil {
			return err
		}
		if f.transformed {
			if nodes, err = runner.Transform(ctx, nodes, players); err != nil {
				return err
			}
		}
		if f.format == treeDOT {
			out = []byte(render.DOT(nodes))
			break
		}
		if out, err = render.TreeSVG(ctx, nodes); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}

	default:
		return fmt.Errorf("unknown dump format %q (want json, dot or svg)", f.format)
	}

	return writeOutput(cmd, f.output, out)
}
