package meter

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/meterkit/meterkit/pkg/featureflag"
)

// Registry collects metrics and exposes them for scraping. It combines
// the prometheus registration and gathering capabilities with a mutable
// Config that is applied to collectors at registration time.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer

	// Name returns the name identifying the registry in log output.
	Name() string

	// Config returns the mutable configuration of this registry.
	Config() *Config
}

type registry struct {
	name   string
	config *Config
	base   *prometheus.Registry
}

// let compiler verify interface compliance
var _ Registry = (*registry)(nil)

// Option configures a registry created by New.
type Option func(*registry)

// WithName sets the registry name used in log output. Without this
// option the registry gets a generated unique name.
func WithName(name string) Option {
	return func(r *registry) {
		r.name = name
	}
}

// New creates an empty registry. The registry uses pedantic collector
// checking if the featureflag.PedanticRegistries feature flag is
// enabled.
func New(opts ...Option) Registry {
	r := &registry{
		config: newConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.name == "" {
		r.name = "registry-" + uuid.NewString()[:8]
	}
	if featureflag.PedanticRegistries.Enabled() {
		r.base = prometheus.NewPedanticRegistry()
	} else {
		r.base = prometheus.NewRegistry()
	}
	return r
}

func (r *registry) Name() string {
	return r.name
}

func (r *registry) Config() *Config {
	return r.config
}

// registerer returns the base registerer wrapped with the current
// common tags and name prefix. The wrapping happens per call so that
// config mutations affect subsequent registrations only.
func (r *registry) registerer() prometheus.Registerer {
	var reg prometheus.Registerer = r.base
	if labels := r.config.commonTagLabels(); len(labels) > 0 {
		reg = prometheus.WrapRegistererWith(labels, reg)
	}
	if prefix := r.config.namePrefixValue(); prefix != "" {
		reg = prometheus.WrapRegistererWithPrefix(prefix, reg)
	}
	return reg
}

func (r *registry) Register(collector prometheus.Collector) error {
	return r.registerer().Register(collector)
}

func (r *registry) MustRegister(collectors ...prometheus.Collector) {
	for _, collector := range collectors {
		if err := r.Register(collector); err != nil {
			panic(err)
		}
	}
}

// Unregister removes the given collector. The collector is found by
// the config that was effective when it was registered, so collectors
// registered before a config mutation must be unregistered with care.
func (r *registry) Unregister(collector prometheus.Collector) bool {
	return r.registerer().Unregister(collector)
}

func (r *registry) Gather() ([]*dto.MetricFamily, error) {
	return r.base.Gather()
}
