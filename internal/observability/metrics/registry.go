// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track catalog contents and activity
var (
	// ArticlesTotal tracks the total number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the registry",
		},
	)

	// MagazinesTotal tracks the total number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "magazines_total",
			Help: "Total number of magazines in the registry",
		},
	)

	// ArticlesPublishedTotal counts articles published per magazine
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
		[]string{"magazine"},
	)

	// ValidationFailuresTotal counts rejected entity constructions and mutations
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of validation failures",
		},
		[]string{"operation"},
	)
)

// Registry metrics track registry access performance
var (
	// RegistryOpDuration measures registry operation duration
	RegistryOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_op_duration_seconds",
			Help:    "Registry operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
		[]string{"operation"},
	)
)
