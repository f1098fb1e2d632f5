package pipeline

import (
	"context"
	"time"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/cache"
	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/observability"
	"github.com/brdgme/markup/pkg/parse"
	"github.com/brdgme/markup/pkg/render"
	"github.com/brdgme/markup/pkg/transform"
)

// Parse turns template markup into a document tree.
func (r *Runner) Parse(ctx context.Context, src string) ([]ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(src))

	start := time.Now()
	nodes, err := parse.Parse(src)
	hooks.OnParseComplete(ctx, ast.Count(nodes), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("parsed template", "bytes", len(src), "nodes", ast.Count(nodes))
	return nodes, nil
}

// TreeOptions selects what [Runner.Tree] dumps.
type TreeOptions struct {
	Template string   `json:"template"`
	Players  []string `json:"players,omitempty"`

	// Transformed dumps the tree after layout instead of as parsed.
	Transformed bool `json:"transformed,omitempty"`
}

// Tree parses a template and returns its document tree as JSON. The
// untransformed dump does not depend on players and is cached under the
// template's parse key.
func (r *Runner) Tree(ctx context.Context, opts TreeOptions) ([]byte, bool, error) {
	if err := errors.ValidateTemplate(opts.Template); err != nil {
		return nil, false, err
	}
	if err := errors.ValidatePlayers(opts.Players); err != nil {
		return nil, false, err
	}

	key := r.Keyer.ParseKey(cache.Hash([]byte(opts.Template)))
	if !opts.Transformed {
		if data, ok := r.lookup(ctx, key, "parse"); ok {
			return data, true, nil
		}
	}

	nodes, err := r.Parse(ctx, opts.Template)
	if err != nil {
		return nil, false, err
	}
	if opts.Transformed {
		if nodes, err = r.Transform(ctx, nodes, opts.Players); err != nil {
			return nil, false, err
		}
	}

	data, err := render.JSON(nodes)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode tree")
	}
	if !opts.Transformed {
		r.store(ctx, key, "parse", data)
	}
	return data, false, nil
}

// Transform resolves every layout directive in nodes for players.
func (r *Runner) Transform(ctx context.Context, nodes []ast.Node, players []string) ([]ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, ast.Count(nodes))

	start := time.Now()
	flat := transform.Transform(nodes, players)
	hooks.OnTransformComplete(ctx, ast.Count(flat), time.Since(start))
	return flat, nil
}
