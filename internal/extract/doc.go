// Package extract turns schedule, lineup and play-by-play pages into player
// statistics.
//
// The Schedule Walker reads a competition's results table and, for every game
// with a results link, runs the lineup extraction and then the game event
// extraction. Lineups register players and count games played; game events
// attribute goals, assists and penalty minutes. Goal attribution is inferred
// from the running score: whichever side's counter changed scored the goal.
//
// Data problems never abort a run. Unparseable players, unmapped team codes
// and unavailable pages are logged and skipped.
package extract
