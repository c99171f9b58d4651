package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	compiles  *prometheus.CounterVec
	states    *prometheus.HistogramVec
	cacheHits prometheus.Counter
	duration  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regexfa_compiles_total",
				Help: "Patterns compiled, by mode.",
			},
			[]string{"mode"},
		),
		states: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regexfa_automaton_states",
				Help:    "States in compiled automata, by mode.",
				Buckets: prometheus.ExponentialBuckets(2, 2, 12),
			},
			[]string{"mode"},
		),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "regexfa_cache_hits_total",
			Help: "Automaton requests served from the cache.",
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regexfa_http_request_duration_seconds",
				Help:    "HTTP request latency, by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(
		m.compiles, m.states, m.cacheHits, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
