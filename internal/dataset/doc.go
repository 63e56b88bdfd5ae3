// Package dataset models the ingested sales export and owns the ingestion
// boundary: the required-column contract, typed per-column parsing of Excel
// uploads, and the JSON interchange form that round-trips the validated
// dataset between the dashboard and forecast requests.
//
// # Data Flow
//
//	Excel upload → ParseWorkbook → Dataset → analytics / JSON interchange
//
// Validation and parse failures are detected here, at the earliest stage:
// a table missing required columns yields a SchemaError naming every absent
// column, and a cell that cannot be parsed into its declared type yields a
// ParseError naming the row and column. No value is ever silently coerced
// to a default.
package dataset
