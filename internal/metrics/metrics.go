// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface services and middleware record through.
type Recorder interface {
	RecordHTTPRequest(method, path string, statusCode int)
	RecordSuggestionServed()
	RecordSuggestionEmpty()
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	httpRequests     *prometheus.CounterVec
	suggestionServed prometheus.Counter
	suggestionEmpty  prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wardrobe_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status_code"}),
		suggestionServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wardrobe_suggestions_served_total",
			Help: "Outfit suggestions that returned an item.",
		}),
		suggestionEmpty: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wardrobe_suggestions_empty_total",
			Help: "Outfit suggestions where no item matched the criteria.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.suggestionServed,
		c.suggestionEmpty,
	)

	return c
}

// RecordHTTPRequest counts a finished HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, statusCode int) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// RecordSuggestionServed counts a suggestion that returned an item.
func (c *Collector) RecordSuggestionServed() {
	c.suggestionServed.Inc()
}

// RecordSuggestionEmpty counts a suggestion with an empty candidate set.
func (c *Collector) RecordSuggestionEmpty() {
	c.suggestionEmpty.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
