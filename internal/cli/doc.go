// Package cli implements the command-line interface for hockey-stats.
//
// The cli package provides the Cobra-based root command. It walks one or more
// schedules into a single player registry, applies the report filters, writes
// the CSV exports (plus the optional workbook and game calendar) into the
// output directory, and prints the console report as text or JSON.
package cli
