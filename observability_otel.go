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
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OTelRecorder is an ObservabilityRecorder that wraps every match in a span
// and records match latency and rebuild counts as OTel metric instruments.
// It never configures an exporter or provider itself; it emits to whatever
// otel.TracerProvider/otel.MeterProvider the embedder has registered
// globally.
type OTelRecorder struct {
	tracer        trace.Tracer
	matchLatency  metric.Float64Histogram
	rebuildCount  metric.Int64Counter
	rebuildLatency metric.Float64Histogram
}

// otelResponseInfo is the ResponseInfo concrete type OTelRecorder hands
// back from OnMatchStart: the span it opened, kept alive until OnMatchEnd.
type otelResponseInfo struct {
	span trace.Span
}

// NewOTelRecorder builds a recorder using tracer for spans and meter for
// instruments. Passing the global tracer/meter providers' defaults is the
// common case.
func NewOTelRecorder(tracer trace.Tracer, meter metric.Meter) (*OTelRecorder, error) {
	matchLatency, err := meter.Float64Histogram(
		"router.match.duration",
		metric.WithDescription("Duration of Router.Match calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	rebuildCount, err := meter.Int64Counter(
		"router.rebuild.count",
		metric.WithDescription("Number of automaton rebuilds"),
	)
	if err != nil {
		return nil, err
	}
	rebuildLatency, err := meter.Float64Histogram(
		"router.rebuild.duration",
		metric.WithDescription("Duration of automaton rebuilds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &OTelRecorder{
		tracer:         tracer,
		matchLatency:   matchLatency,
		rebuildCount:   rebuildCount,
		rebuildLatency: rebuildLatency,
	}, nil
}

// OnMatchStart implements ObservabilityRecorder.
func (o *OTelRecorder) OnMatchStart(method, path string) ResponseInfo {
	_, span := o.tracer.Start(context.Background(), "router.match",
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("url.path", path),
		),
	)
	return &otelResponseInfo{span: span}
}

// OnMatchEnd implements ObservabilityRecorder.
func (o *OTelRecorder) OnMatchEnd(info ResponseInfo, matched bool, duration time.Duration) {
	ri, ok := info.(*otelResponseInfo)
	if !ok || ri == nil {
		return
	}
	ri.span.SetAttributes(attribute.Bool("router.matched", matched))
	ri.span.End()
	o.matchLatency.Record(context.Background(), duration.Seconds())
}

// OnRebuild implements ObservabilityRecorder.
func (o *OTelRecorder) OnRebuild(terminalCount int, duration time.Duration) {
	o.rebuildCount.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("router.terminal_count", terminalCount)))
	o.rebuildLatency.Record(context.Background(), duration.Seconds())
}
