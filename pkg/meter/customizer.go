package meter

import (
	"github.com/pkg/errors"
)

// Customizer is a unit of configuration logic applied to a registry
// before any binders run on it, e.g. to establish the default tag set
// or the metric name prefix.
type Customizer interface {
	// Customize mutates the configuration of the given registry.
	Customize(Registry) error
}

// CustomizerFunc adapts an ordinary function to the Customizer
// interface.
type CustomizerFunc func(Registry) error

func (f CustomizerFunc) Customize(registry Registry) error {
	return f(registry)
}

// CommonTags returns a customizer that adds the given tags to the
// default tag set of a registry. kvs must be alternating key/value
// pairs.
func CommonTags(kvs ...string) Customizer {
	return &commonTagsCustomizer{kvs: kvs}
}

type commonTagsCustomizer struct {
	kvs []string
}

func (c *commonTagsCustomizer) Name() string {
	return "commonTags"
}

func (c *commonTagsCustomizer) Customize(registry Registry) error {
	if len(c.kvs)%2 != 0 {
		return errors.Errorf("odd number of tag key/value arguments: %d", len(c.kvs))
	}
	registry.Config().CommonTags(c.kvs...)
	return nil
}

// NamePrefix returns a customizer that prepends the given prefix to the
// names of all metrics registered after customization.
func NamePrefix(prefix string) Customizer {
	return &namePrefixCustomizer{prefix: prefix}
}

type namePrefixCustomizer struct {
	prefix string
}

func (c *namePrefixCustomizer) Name() string {
	return "namePrefix"
}

func (c *namePrefixCustomizer) Customize(registry Registry) error {
	registry.Config().NamePrefix(c.prefix)
	return nil
}
