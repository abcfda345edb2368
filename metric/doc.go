// Package metric provides Prometheus instrumentation for the codec and
// store layers.
//
// The core Metrics struct carries counters, gauges and histograms for
// encode/decode activity (per codec, with decode failures broken down by
// error kind) and for value stores (current size, operation counts).
// MetricsRegistry owns a prometheus.Registry with the core metrics and
// Go runtime collectors pre-registered, and lets components register
// their own collectors under a namespaced key so duplicates are caught
// at registration time rather than at scrape time.
//
// All metrics are optional throughout the module: the codecs and stores
// accept a *Metrics via an option and skip recording when none is set.
package metric
