// Package observability lets a binary observe the markup pipeline without
// the library packages importing a metrics backend.
//
// Three hook sets exist: [PipelineHooks] for the parse, transform and render
// stages, [CacheHooks] for render cache traffic and [HTTPHooks] for the render
// service. Each starts as a no-op. The serve command installs Prometheus
// implementations at startup; the other commands keep the defaults.
//
// Emitting code fetches the current hooks at the call site:
//
//	start := time.Now()
//	observability.Pipeline().OnParseStart(ctx, len(src))
//	nodes, err := parse.Parse(src)
//	observability.Pipeline().OnParseComplete(ctx, ast.Count(nodes), time.Since(start), err)
package observability
