// Package report renders the forecast artifacts: the trend chart PNG and
// the paginated PDF document, plus the run-scoped store that owns their
// lifecycle on disk.
//
// Renderers are pure producers of bytes; only ArtifactStore touches the
// filesystem. Each forecast run is stored under its own run ID, and the
// store tracks the most recent complete run for id-less retrieval.
package report
