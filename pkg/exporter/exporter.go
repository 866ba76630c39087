// Package exporter runs a standalone metrics exporter: it creates a
// registry, configures it with the customizers and binders derived from
// the configuration and serves the result on an HTTP exposition
// endpoint.
package exporter

import (
	"context"

	klog "k8s.io/klog/v2"

	"github.com/meterkit/meterkit/pkg/featureflag"
	"github.com/meterkit/meterkit/pkg/meter"
	"github.com/meterkit/meterkit/pkg/utils"
)

// Exporter wires a configured registry to the exposition endpoint.
type Exporter struct {
	config   *Config
	registry meter.Registry
}

// New creates an exporter from the given configuration.
func New(config *Config) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Registry returns the exporter's registry. It is nil before Run has
// been called.
func (e *Exporter) Registry() meter.Registry {
	return e.registry
}

// Run configures the exporter's registry, starts the exposition server
// and blocks until stopCh is closed.
func (e *Exporter) Run(ctx context.Context, stopCh <-chan struct{}) error {
	logger := klog.FromContext(ctx)

	configJSON, err := utils.ToJSONString(e.config)
	if err != nil {
		return err
	}
	logger.Info("Effective configuration", "config", configJSON)

	e.registry = meter.New(meter.WithName(e.config.RegistryName))

	addToGlobal := e.config.AddToGlobalRegistry &&
		featureflag.GlobalRegistration.Enabled()

	meter.Configure(ctx, e.registry, e.config.customizers(), e.config.binders(), addToGlobal)

	meter.StartServer(e.config.MetricsPort, e.registry)
	logger.Info("Exporter running",
		"registry", e.registry.Name(),
		"port", e.config.MetricsPort,
		"binders", e.config.enabledBinderNames(),
		"addedToGlobalRegistry", addToGlobal,
	)

	<-stopCh
	logger.Info("Exporter stopped")
	return nil
}
