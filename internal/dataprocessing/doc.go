// Package dataprocessing implements the call-report analysis pipeline.
// It consolidates file loading, header normalization, metric calculation,
// insight generation and chart building into a cohesive package that takes
// an uploaded CSV or Excel byte stream to a full dashboard analysis.
//
// # Architecture
//
// The package is organized into five components, applied in order:
//
//  1. Loader: parses CSV/Excel uploads into a normalized Table
//  2. Metrics: row count and distinct-value counts per key column
//  3. Insights: human-readable sentences derived from the table and metrics
//  4. Charts: five independent declarative chart builders
//  5. Stats: per-column descriptive statistics for the summary export
//
// # Data Flow
//
//	Upload → Loader → domain.Table → Metrics/Insights/Charts/Stats → domain.Analysis
//
// # Error Handling
//
// Only the loader returns errors (unsupported format, parse failure).
// Everything downstream is total: missing columns simply omit their metric,
// insight or chart; rows with unparseable dates are dropped from
// date-dependent computations; a panicking chart builder forfeits its slot
// without affecting the others.
//
// All computation is pure and per-upload; the package holds no state.
package dataprocessing
