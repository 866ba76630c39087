package meter

// Binder registers a fixed set of metrics onto a registry, e.g. process
// or runtime gauges. Implementations should tolerate being bound to
// multiple registries.
type Binder interface {
	// BindTo registers the binder's metrics with the given registry.
	BindTo(Registry) error
}

// BinderFunc adapts an ordinary function to the Binder interface.
type BinderFunc func(Registry) error

func (f BinderFunc) BindTo(registry Registry) error {
	return f(registry)
}
