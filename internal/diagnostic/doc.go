// Package diagnostic provides structured errors and warnings for the
// Axes signature metadata table.
//
// Key capabilities:
//   - Malformed parameter list errors (ordering, duplicates, defaults)
//   - Unconventional naming warnings
//   - Combined error reporting for CLI consumption
package diagnostic
