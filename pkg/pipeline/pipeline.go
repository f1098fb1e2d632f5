// Package pipeline runs templates through parse → transform → render.
//
// The CLI and the HTTP service both go through a [Runner], so caching,
// validation and logging behave the same for every entry point.
//
// # Stages
//
//  1. Parse: markup text to a document tree ([parse.Parse])
//  2. Transform: layout directives resolved for a player roster ([transform.Transform])
//  3. Render: the flat tree written in an output format ([render.Transformed])
//
// Rendered output depends only on the template, the roster and the format,
// so [Runner.Execute] caches it under a key derived from all three.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Template: "{{player 0}} to move",
//	    Players:  []string{"mick", "steve"},
//	    Format:   "html",
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
//
// The stages can also be run one at a time with [Runner.Parse],
// [Runner.Transform] and [Runner.Render].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/cache"
	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/render"
)

// DefaultFormat is used when Options.Format is empty.
const DefaultFormat = render.FormatANSI

// Options describes one render.
type Options struct {
	Template string   `json:"template"`
	Players  []string `json:"players,omitempty"`
	Format   string   `json:"format,omitempty"`

	// Refresh skips the cache lookup. The fresh output is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the template, roster and format, and fills
// in defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateTemplate(o.Template); err != nil {
		return err
	}
	if err := errors.ValidatePlayers(o.Players); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = string(DefaultFormat)
	}
	f, err := render.ValidateFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = string(f)
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	o.validated = true
	return nil
}

// TemplateHash returns the content hash of the template.
func (o *Options) TemplateHash() string {
	return cache.Hash([]byte(o.Template))
}

// CacheKeyOpts returns the options that select a cached render.
func (o *Options) CacheKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:  o.Format,
		Players: o.Players,
	}
}

// Result is the outcome of [Runner.Execute].
type Result struct {
	// Output is the rendered document.
	Output []byte

	// Format is the format Output is in.
	Format render.Format

	// Nodes is the transformed tree. It is nil when the output came from
	// the cache.
	Nodes []ast.Node

	Stats Stats

	// CacheHit reports whether Output was served from the cache.
	CacheHit bool
}

// Stats contains timing and size information for one run.
type Stats struct {
	TemplateBytes int
	NodeCount     int
	OutputBytes   int
	ParseTime     time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// Total returns the time spent in all stages.
func (s Stats) Total() time.Duration {
	return s.ParseTime + s.TransformTime + s.RenderTime
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
