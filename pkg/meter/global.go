package meter

import (
	"sync"
)

var (
	global         *Composite
	globalInitOnce sync.Once
)

// Global returns the process-wide composite registry. It is created on
// first use and lives for the remaining process lifetime. Registries
// added to it feed every consumer of the global registry, e.g. a single
// exposition endpoint serving the metrics of all configured registries.
func Global() *Composite {
	globalInitOnce.Do(func() {
		global = NewComposite("global")
	})
	return global
}

// AddToGlobal adds the given registry to the global composite registry.
// Adding a registry that is already contained, or the global registry
// itself, is a no-op. The function returns true if the registry has
// been added.
//
// AddToGlobal is safe for concurrent use.
func AddToGlobal(registry Registry) bool {
	globalRegistry := Global()
	if registry == Registry(globalRegistry) {
		return false
	}
	return globalRegistry.Add(registry)
}
