// Package analytics is the numeric core of the pipeline: scalar summary
// metrics, grouped category sums, the chronological daily sales series, and
// the least-squares forecast extrapolated from it.
//
// Every function here is pure and deterministic given its inputs; rendering
// and artifact writes live in the report package so this core stays fully
// testable without any rendering dependency.
//
// The regression's independent variable is the rank among distinct sale
// dates (day_index), while extrapolated forecast dates are calendar
// consecutive. Calendar gaps in the input are deliberately not filled, so
// day_index N means "the Nth distinct sale day", not "N elapsed days".
package analytics
