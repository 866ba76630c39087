package binders

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"

	"github.com/meterkit/meterkit/pkg/errors"
	"github.com/meterkit/meterkit/pkg/meter"
)

func Test_Process_BindTo(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))

	// EXERCISE
	err := Process().BindTo(registry)

	// VERIFY
	assert.NilError(t, err)
	assert.Assert(t, hasMetricFamily(t, registry, "process_cpu_seconds_total"))
}

func Test_Runtime_BindTo(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))

	// EXERCISE
	err := Runtime().BindTo(registry)

	// VERIFY
	assert.NilError(t, err)
	assert.Assert(t, hasMetricFamily(t, registry, "go_goroutines"))
}

func Test_BuildInfo_BindTo(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))

	// EXERCISE
	err := BuildInfo().BindTo(registry)

	// VERIFY
	assert.NilError(t, err)
	assert.Assert(t, hasMetricFamily(t, registry, "go_build_info"))
}

func Test_BindTwice_IsRecoverableFailure(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))
	assert.NilError(t, Runtime().BindTo(registry))

	// EXERCISE
	err := Runtime().BindTo(registry)

	// VERIFY
	assert.Assert(t, err != nil)
	assert.Assert(t, errors.IsRecoverable(err))
	assert.ErrorContains(t, err, "failed to register collector")
	assert.ErrorContains(t, err, "duplicate metrics collector registration attempted")
}

func Test_Bind_OtherFailureIsNotRecoverable(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))
	assert.NilError(t, registry.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_uptime_seconds",
			Help: "conflicting help text",
		},
		func() float64 { return 0 },
	)))

	// EXERCISE
	err := Uptime().BindTo(registry)

	// VERIFY
	assert.Assert(t, err != nil)
	assert.Assert(t, !errors.IsRecoverable(err))
	assert.ErrorContains(t, err, "failed to register collector")
}

func Test_Binders_CarryCommonTags(t *testing.T) {
	t.Parallel()

	// SETUP
	registry := meter.New(meter.WithName("registry1"))
	registry.Config().CommonTags("env", "prod")

	// EXERCISE
	assert.NilError(t, Process().BindTo(registry))

	// VERIFY
	metricFamilies, err := registry.Gather()
	assert.NilError(t, err)
	assert.Assert(t, len(metricFamilies) > 0)
	for _, metricFamily := range metricFamilies {
		for _, ioMetric := range metricFamily.GetMetric() {
			found := false
			for _, label := range ioMetric.Label {
				if label.GetName() == "env" && label.GetValue() == "prod" {
					found = true
				}
			}
			assert.Assert(t, found, "metric %s misses common tag", metricFamily.GetName())
		}
	}
}

func hasMetricFamily(t *testing.T, registry meter.Registry, name string) bool {
	t.Helper()

	metricFamilies, err := registry.Gather()
	assert.NilError(t, err)
	for _, metricFamily := range metricFamilies {
		if metricFamily.GetName() == name {
			return true
		}
	}
	return false
}
