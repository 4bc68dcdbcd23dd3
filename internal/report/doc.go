// Package report renders player statistics: the semicolon-separated CSV
// exports, an optional Excel workbook, and the console summary.
package report
