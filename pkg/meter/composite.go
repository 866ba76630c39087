package meter

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Composite is a registry that fans out to a set of child registries
// instead of storing metrics itself. Registration is forwarded to every
// child; gathering merges the gather results of all children.
//
// All methods are safe for concurrent use.
type Composite struct {
	name   string
	config *Config

	mu       sync.RWMutex
	children []Registry
}

// let compiler verify interface compliance
var _ Registry = (*Composite)(nil)

// NewComposite creates a composite registry with the given children.
func NewComposite(name string, children ...Registry) *Composite {
	composite := &Composite{
		name:   name,
		config: newConfig(),
	}
	for _, child := range children {
		composite.Add(child)
	}
	return composite
}

func (c *Composite) Name() string {
	return c.name
}

// Config returns the composite's own configuration. It is never applied
// to children; children keep their individual configuration.
func (c *Composite) Config() *Config {
	return c.config
}

// Add adds a child registry. It returns false without modification if
// the child is already contained or is the composite itself.
func (c *Composite) Add(child Registry) bool {
	if child == Registry(c) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.children {
		if existing == child {
			return false
		}
	}
	c.children = append(c.children, child)
	return true
}

// Remove removes a child registry. It returns false if the child was
// not contained.
func (c *Composite) Remove(child Registry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a snapshot of the current child registries.
func (c *Composite) Children() []Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Registry{}, c.children...)
}

// Register registers the collector with every child. Failures of
// individual children do not prevent registration with the remaining
// children; all failures are returned as a single joined error.
func (c *Composite) Register(collector prometheus.Collector) error {
	var errs []error
	for _, child := range c.Children() {
		if err := child.Register(collector); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Composite) MustRegister(collectors ...prometheus.Collector) {
	for _, collector := range collectors {
		if err := c.Register(collector); err != nil {
			panic(err)
		}
	}
}

// Unregister removes the collector from every child. It returns true if
// at least one child had the collector registered.
func (c *Composite) Unregister(collector prometheus.Collector) bool {
	unregistered := false
	for _, child := range c.Children() {
		if child.Unregister(collector) {
			unregistered = true
		}
	}
	return unregistered
}

func (c *Composite) Gather() ([]*dto.MetricFamily, error) {
	children := c.Children()
	gatherers := make(prometheus.Gatherers, 0, len(children))
	for _, child := range children {
		gatherers = append(gatherers, child)
	}
	return gatherers.Gather()
}
