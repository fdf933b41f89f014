// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder is an ObservabilityRecorder that exposes match
// latency and rebuild counts as a prometheus.Collector, for embedders who
// scrape directly rather than going through an OTel Prometheus exporter.
// It implements prometheus.Collector itself so callers register it with
// prometheus.Register like any other collector.
type PrometheusRecorder struct {
	matchLatency *prometheus.HistogramVec
	matchTotal   *prometheus.CounterVec
	rebuildTotal prometheus.Counter
}

// NewPrometheusRecorder builds a PrometheusRecorder with unregistered
// metrics; the caller is responsible for registering it.
func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{
		matchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "router_match_duration_seconds",
			Help:    "Duration of Router.Match calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "matched"}),
		matchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "router_match_total",
			Help: "Total Router.Match calls by method and outcome.",
		}, []string{"method", "matched"}),
		rebuildTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "router_rebuild_total",
			Help: "Total automaton rebuilds.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (p *PrometheusRecorder) Describe(ch chan<- *prometheus.Desc) {
	p.matchLatency.Describe(ch)
	p.matchTotal.Describe(ch)
	ch <- p.rebuildTotal.Desc()
}

// Collect implements prometheus.Collector.
func (p *PrometheusRecorder) Collect(ch chan<- prometheus.Metric) {
	p.matchLatency.Collect(ch)
	p.matchTotal.Collect(ch)
	ch <- p.rebuildTotal
}

// prometheusResponseInfo carries the matched method across OnMatchStart to
// OnMatchEnd so the outcome label can be attached once the result is known.
type prometheusResponseInfo struct {
	method string
}

// OnMatchStart implements ObservabilityRecorder.
func (p *PrometheusRecorder) OnMatchStart(method, _ string) ResponseInfo {
	return &prometheusResponseInfo{method: method}
}

// OnMatchEnd implements ObservabilityRecorder.
func (p *PrometheusRecorder) OnMatchEnd(info ResponseInfo, matched bool, duration time.Duration) {
	ri, ok := info.(*prometheusResponseInfo)
	if !ok || ri == nil {
		return
	}
	label := "false"
	if matched {
		label = "true"
	}
	p.matchLatency.WithLabelValues(ri.method, label).Observe(duration.Seconds())
	p.matchTotal.WithLabelValues(ri.method, label).Inc()
}

// OnRebuild implements ObservabilityRecorder.
func (p *PrometheusRecorder) OnRebuild(int, time.Duration) {
	p.rebuildTotal.Inc()
}
