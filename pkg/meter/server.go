package meter

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	klog "k8s.io/klog/v2"
)

// Handler returns an HTTP handler exposing the metrics of the given
// gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// StartServer starts the HTTP server providing the metrics of the given
// gatherer for scraping.
func StartServer(port uint16, gatherer prometheus.Gatherer) {
	go func() {
		serveMux := http.NewServeMux()
		serveMux.Handle("/metrics", Handler(gatherer))

		for {
			err := http.ListenAndServe(fmt.Sprintf(":%d", port), serveMux)
			if err == http.ErrServerClosed {
				break
			}
			if err != nil {
				klog.ErrorS(err, "metrics server terminated unexpectedly and will be restarted")
			}
		}
	}()
}
