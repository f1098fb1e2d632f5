package cache

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// ParseKey returns the key for the parsed document of a template.
	ParseKey(templateHash string) string

	// RenderKey returns the key for a template's rendered output.
	RenderKey(templateHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts holds everything besides the template that changes
// rendered output.
type RenderKeyOpts struct {
	Format  string   `json:"format"`
	Players []string `json:"players"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ParseKey returns "parse:<templateHash>".
func (DefaultKeyer) ParseKey(templateHash string) string {
	return "parse:" + templateHash
}

// RenderKey returns "render:" followed by a hash of the template hash and
// opts. Player order matters: the roster index is what templates refer to.
func (DefaultKeyer) RenderKey(templateHash string, opts RenderKeyOpts) string {
	if opts.Players == nil {
		opts.Players = []string{}
	}
	return hashKey("render", templateHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
