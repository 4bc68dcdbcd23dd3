// Package stats holds the player registry: cumulative per-player season totals
// and the log of events they were derived from.
//
// A Registry is created once per run and passed to every extractor. Players are
// created lazily on first reference and never removed; counters only grow.
package stats
