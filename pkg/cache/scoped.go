package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several deployments share one Redis instance.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "markup:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ParseKey generates a prefixed key for parsed documents.
func (k *ScopedKeyer) ParseKey(templateHash string) string {
	return k.prefix + k.inner.ParseKey(templateHash)
}

// RenderKey generates a prefixed key for rendered output.
func (k *ScopedKeyer) RenderKey(templateHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(templateHash, opts)
}
