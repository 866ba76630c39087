// Package binders provides ready-made metric binders for common process
// and runtime metrics.
package binders

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/meterkit/meterkit/pkg/errors"
	"github.com/meterkit/meterkit/pkg/meter"
)

// Process returns a binder that registers process-level metrics (CPU,
// memory, file descriptors) with a registry.
func Process() meter.Binder {
	return &processBinder{}
}

type processBinder struct{}

func (b *processBinder) Name() string {
	return "process"
}

func (b *processBinder) BindTo(registry meter.Registry) error {
	return register(registry,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Runtime returns a binder that registers Go runtime metrics
// (goroutines, GC, memory) with a registry.
func Runtime() meter.Binder {
	return &runtimeBinder{}
}

type runtimeBinder struct{}

func (b *runtimeBinder) Name() string {
	return "runtime"
}

func (b *runtimeBinder) BindTo(registry meter.Registry) error {
	return register(registry, collectors.NewGoCollector())
}

// BuildInfo returns a binder that registers the Go build information of
// the running binary with a registry.
func BuildInfo() meter.Binder {
	return &buildInfoBinder{}
}

type buildInfoBinder struct{}

func (b *buildInfoBinder) Name() string {
	return "buildInfo"
}

func (b *buildInfoBinder) BindTo(registry meter.Registry) error {
	return register(registry, collectors.NewBuildInfoCollector())
}

// register registers the given collectors, stopping at the first
// failure. Registering a collector that is already registered is
// reported as a recoverable failure.
func register(registry meter.Registry, collectors ...prometheus.Collector) error {
	for _, collector := range collectors {
		if cause := registry.Register(collector); cause != nil {
			err := errors.Errorf(cause, "failed to register collector %T", collector)
			return errors.RecoverableIf(err, err.IsAlreadyRegistered())
		}
	}
	return nil
}
