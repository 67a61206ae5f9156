package tsp

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for tour construction.
var (
	tracer = otel.Tracer("etchpath.tsp")
	meter  = otel.Meter("etchpath.tsp")
)

// Metrics for tour construction.
var (
	buildLatency     metric.Float64Histogram
	buildTotal       metric.Int64Counter
	componentsMerged metric.Int64Counter
	tourEntries      metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"tsp_build_duration_seconds",
			metric.WithDescription("Duration of spanning-tree-walk tour construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"tsp_build_total",
			metric.WithDescription("Total number of tour constructions"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		componentsMerged, err = meter.Int64Counter(
			"tsp_components_merged_total",
			metric.WithDescription("Total bridge edges added while merging components"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		tourEntries, err = meter.Int64Histogram(
			"tsp_tour_entries",
			metric.WithDescription("Number of entries per produced tour"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startWalkSpan creates a span for one SpanningTreeWalk call.
func startWalkSpan(ctx context.Context, inputPoints int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "tsp.SpanningTreeWalk",
		trace.WithAttributes(
			attribute.Int("tsp.input_points", inputPoints),
		),
	)
}

// setWalkSpanResult sets the result attributes on a walk span.
func setWalkSpanResult(span trace.Span, s Stats) {
	span.SetAttributes(
		attribute.Int("tsp.points", s.Points),
		attribute.Int("tsp.nearest_edges", s.NearestEdges),
		attribute.Int("tsp.initial_components", s.InitialComponents),
		attribute.Int("tsp.bridge_edges", s.BridgeEdges),
		attribute.Int("tsp.centroid_collisions", s.CentroidCollisions),
		attribute.Int("tsp.tour_entries", s.TourEntries),
		attribute.Float64("tsp.path_length", s.PathLength),
	)
}

// recordWalkMetrics records metrics for one SpanningTreeWalk call.
// res may be nil when err is set.
func recordWalkMetrics(ctx context.Context, duration time.Duration, res *Result, err error) {
	if initErr := initMetrics(); initErr != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", err == nil),
	)
	buildLatency.Record(ctx, duration.Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	if res == nil {
		return
	}
	componentsMerged.Add(ctx, int64(res.Stats.BridgeEdges))
	tourEntries.Record(ctx, int64(res.Stats.TourEntries))
}
