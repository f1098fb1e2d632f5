// Package pkg provides the core libraries for rendering board game markup.
//
// # Overview
//
// Game servers describe what a player sees as a tree of markup: styled text,
// player references, tables, aligned blocks and layered canvases. The
// packages here turn that tree into output for a terminal, a browser, a
// plain text log or a JSON consumer. The pkg directory is organized into
// three areas:
//
//  1. Model: [ast], [color] and [lines] define the node tree and the
//     line-oriented helpers layout is built on.
//  2. Processing: [parse] reads the textual tag syntax, [transform] lowers
//     layout directives to flat styled text, and [render] emits the
//     output formats.
//  3. Infrastructure: [pipeline] runs parse, transform and render with
//     caching from [cache], configured by [config] and instrumented through
//     [observability].
//
// # Architecture
//
// The typical data flow:
//
//	Template source
//	       ↓
//	  [parse] package (tag syntax to node tree)
//	       ↓
//	  [transform] package (tables, alignment, canvases, player names)
//	       ↓
//	  [render] package (ANSI, HTML, plain, JSON)
//
// # Quick Start
//
//	nodes, err := parse.Parse("{{b}}Turn{{/b}}: {{player 0}}")
//	if err != nil {
//	    return err
//	}
//	out, err := render.Render(render.FormatANSI, nodes, []string{"mick", "steve"})
//
// With caching and timing, use the pipeline runner:
//
//	r := pipeline.NewRunner(cache.NullCache{}, nil, logger)
//	res, err := r.Execute(ctx, pipeline.Options{
//	    Template: src,
//	    Players:  []string{"mick", "steve"},
//	    Format:   render.FormatHTML,
//	})
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/transform/...  # Specific package
//	go test -run Example ./...   # Examples only
//
// [ast]: https://pkg.go.dev/github.com/brdgme/markup/pkg/ast
// [color]: https://pkg.go.dev/github.com/brdgme/markup/pkg/color
// [lines]: https://pkg.go.dev/github.com/brdgme/markup/pkg/lines
// [parse]: https://pkg.go.dev/github.com/brdgme/markup/pkg/parse
// [transform]: https://pkg.go.dev/github.com/brdgme/markup/pkg/transform
// [render]: https://pkg.go.dev/github.com/brdgme/markup/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/brdgme/markup/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/brdgme/markup/pkg/cache
// [config]: https://pkg.go.dev/github.com/brdgme/markup/pkg/config
// [observability]: https://pkg.go.dev/github.com/brdgme/markup/pkg/observability
package pkg
