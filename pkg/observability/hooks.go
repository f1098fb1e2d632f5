package observability

import (
	"context"
	"time"
)

// PipelineHooks receives stage events from pipeline.Runner. Transform has
// no error argument because it cannot fail.
type PipelineHooks interface {
	OnParseStart(ctx context.Context, templateBytes int)
	OnParseComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)
	OnTransformStart(ctx context.Context, nodeCount int)
	OnTransformComplete(ctx context.Context, nodeCount int, duration time.Duration)
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, outputBytes int, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is the key's stage
// prefix, "render" or "parse".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives request events. route is the matched route pattern,
// not the raw path, so label cardinality stays bounded.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every event. Embed it to implement only some
// methods.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, int)                                   {}
func (NoopPipelineHooks) OnParseComplete(context.Context, int, time.Duration, error)          {}
func (NoopPipelineHooks) OnTransformStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnTransformComplete(context.Context, int, time.Duration)             {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
