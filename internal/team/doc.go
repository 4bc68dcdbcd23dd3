// Package team resolves the abbreviated team codes used in game event tables
// ("SKE", "BOO") to the full team names used in lineup headings
// ("Skellefteå AIK", "Boo HC").
//
// Resolutions are memoized in a Cache that lives for one run. Once a code is
// resolved it stays resolved, even if a later candidate list would suggest a
// better match.
package team
