// Package scraper fetches schedule, lineup and play-by-play pages from the
// ice-hockey statistics site and returns them as parsed HTML documents.
//
// Page URLs follow fixed templates parameterized by a schedule or game
// identifier. A non-200 response is reported as a *StatusError so callers can
// skip the page and carry on with the rest of the run.
package scraper
