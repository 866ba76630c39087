package binders

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/meterkit/meterkit/pkg/meter"
)

// Uptime returns a binder that registers a gauge reporting the time
// elapsed since the binder was created, in seconds.
func Uptime() meter.Binder {
	c := clock.New()
	return &uptimeBinder{
		clock: c,
		start: c.Now(),
	}
}

type uptimeBinder struct {
	clock clock.Clock
	start time.Time
}

func (b *uptimeBinder) Name() string {
	return "uptime"
}

func (b *uptimeBinder) BindTo(registry meter.Registry) error {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_uptime_seconds",
			Help: "The time elapsed since process start, in seconds.",
		},
		func() float64 {
			return b.clock.Since(b.start).Seconds()
		},
	)
	return register(registry, gauge)
}
