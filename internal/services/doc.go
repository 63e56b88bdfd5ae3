// Package services orchestrates the aggregation-and-forecast pipeline:
// upload ingestion into dashboard aggregates, and forecast runs that fit
// the trend model and produce the chart and report artifacts.
//
// Forecast runs are serialized with a mutex; combined with per-run artifact
// directories this keeps a download during one run from ever observing a
// partially written artifact from another.
package services
