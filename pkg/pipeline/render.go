package pipeline

import (
	"context"
	"time"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/observability"
	"github.com/brdgme/markup/pkg/render"
)

// Render writes a transformed tree in format. It panics if flat still
// holds layout directives, like the renderers it calls.
func (r *Runner) Render(ctx context.Context, format render.Format, flat []ast.Node) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(format))

	start := time.Now()
	out, err := render.Transformed(format, flat)
	hooks.OnRenderComplete(ctx, string(format), len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("rendered tree", "format", format, "bytes", len(out))
	return out, nil
}
