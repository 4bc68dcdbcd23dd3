package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// Lineups registers every player on a game's lineup page and counts the game
// as played for each of them. It returns the home and away team names taken
// from the matchup text, which are independent of the headings on the page.
// When the page cannot be fetched the names are empty and the error says why.
func (e *Extractor) Lineups(g Game) (home, away string, err error) {
	home, away, err = parse.SplitMatchup(g.Matchup)
	if err != nil {
		return "", "", err
	}

	doc, err := e.fetcher.FetchLineups(g.ID)
	if err != nil {
		logger.IncrCounter("fetch.failed")
		return "", "", fmt.Errorf("fetching lineups for game %s: %w", g.ID, err)
	}

	n := e.recordLineups(doc, g.meta(home, away))
	logger.AddCounter("lineups.players", int64(n))
	logger.Debug("Parsed lineups", logger.Fields{
		"game_id": g.ID,
		"players": n,
	})
	return home, away, nil
}

// recordLineups walks team headings and player entries in document order, so
// each player belongs to the nearest preceding heading.
func (e *Extractor) recordLineups(doc *goquery.Document, meta stats.Game) int {
	teamName := ""
	count := 0

	doc.Find("h3, div.lineUpPlayer").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h3" {
			teamName = parse.CleanTeamName(sel.Text())
			return
		}

		raw := sel.Text()
		if teamName == "" {
			logger.Warn("Lineup player without team heading", logger.Fields{
				"game_id": meta.ID,
				"player":  parse.NormalizeText(raw),
			})
			return
		}

		name, number := "", ""
		player, err := parse.ParseLineupPlayer(raw)
		if err != nil {
			name = parse.PlaceholderName(raw)
			logger.Warn("Invalid lineup player", logger.Fields{
				"game_id": meta.ID,
				"team":    teamName,
				"player":  parse.NormalizeText(raw),
			})
		} else {
			name, number = player.FullName(), player.Number
		}

		e.registry.RecordGamePlayed(teamName, name, number, meta)
		count++
		logger.Debug("Game played", logger.Fields{
			"team":   teamName,
			"player": name,
		})
	})

	return count
}
