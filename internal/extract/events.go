package extract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// EventRow is one timed row of a play-by-play table
type EventRow struct {
	Time    string
	Event   string
	Team    string
	Players string
	OnIce   string
}

// GameEvents attributes the goals, assists and penalties of one game
func (e *Extractor) GameEvents(g Game) error {
	home, away, err := parse.SplitMatchup(g.Matchup)
	if err != nil {
		return err
	}

	doc, err := e.fetcher.FetchEvents(g.ID)
	if err != nil {
		logger.IncrCounter("fetch.failed")
		return fmt.Errorf("fetching events for game %s: %w", g.ID, err)
	}

	rows := EventRows(doc)
	logger.Debug("Processing game events", logger.Fields{
		"game_id": g.ID,
		"date":    g.Date,
		"group":   g.Group,
		"home":    home,
		"away":    away,
		"rows":    len(rows),
	})

	e.applyEvents(rows, g.meta(home, away))
	return nil
}

// EventRows returns the timed rows of the play-by-play table in page order.
// The play-by-play is the content table with a Time and an Event column; when
// no table has both, the one with the most timed rows is used.
func EventRows(doc *goquery.Document) []EventRow {
	var best []EventRow
	bestHeaded := false

	doc.Find("table.tblContent").Each(func(_ int, t *goquery.Selection) {
		rows := timedRows(t)
		if len(rows) == 0 {
			return
		}
		header, _ := splitHeader(t)
		headed := columnIndex(header, "Time") >= 0 && columnIndex(header, "Event") >= 0
		if (headed && !bestHeaded) || (headed == bestHeaded && len(rows) > len(best)) {
			best, bestHeaded = rows, headed
		}
	})
	return best
}

// timedRows reads the rows of table whose first cell is a "MM:SS" game clock.
// Header and period summary rows are skipped.
func timedRows(table *goquery.Selection) []EventRow {
	var rows []EventRow
	for _, cells := range tableRows(table) {
		if len(cells) < 4 {
			continue
		}
		if utf8.RuneCountInString(cells[0].Text) != 5 {
			continue
		}
		if _, ok := clockSeconds(cells[0].Text); !ok {
			continue
		}
		row := EventRow{
			Time:    cells[0].Text,
			Event:   cells[1].Text,
			Team:    cells[2].Text,
			Players: cells[3].Text,
		}
		if len(cells) > 4 {
			row.OnIce = cells[4].Text
		}
		rows = append(rows, row)
	}
	return rows
}

// Chronological returns rows in ascending game time. The site usually lists
// the latest event first; a table whose first row is earlier than its last is
// already ascending and is kept as is. Undecidable tables are reversed.
func Chronological(rows []EventRow) []EventRow {
	out := append([]EventRow(nil), rows...)
	if len(out) < 2 {
		return out
	}

	first, okFirst := clockSeconds(out[0].Time)
	last, okLast := clockSeconds(out[len(out)-1].Time)
	if okFirst && okLast && first < last {
		return out
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func clockSeconds(clock string) (int, bool) {
	mm, ss, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	s, err := strconv.Atoi(ss)
	if err != nil {
		return 0, false
	}
	return m*60 + s, true
}

// applyEvents walks rows forward in time keeping a running score. A score row
// belongs to the side whose counter changed; a row that changes neither
// counter is dropped.
func (e *Extractor) applyEvents(rows []EventRow, meta stats.Game) {
	homeGoals, awayGoals := 0, 0

	for _, row := range Chronological(rows) {
		if newHome, newAway, ok := parse.ParseScore(row.Event); ok {
			var scoring string
			switch {
			case newHome != homeGoals:
				homeGoals = newHome
				scoring = meta.HomeTeam
			case newAway != awayGoals:
				awayGoals = newAway
				scoring = meta.AwayTeam
			default:
				logger.Debug("Score row without score change", logger.Fields{
					"game_id": meta.ID,
					"time":    row.Time,
					"event":   row.Event,
				})
				continue
			}
			e.recordGoal(row, scoring, meta)
			continue
		}

		if minutes, ok := parse.ParsePenaltyMinutes(row.Event); ok {
			e.recordPenalty(row, minutes, meta)
		}
	}
}

func (e *Extractor) recordGoal(row EventRow, scoring string, meta stats.Game) {
	players := parse.FindPlayers(row.Players)
	if len(players) == 0 {
		logger.Error("Could not parse goal players", logger.Fields{
			"game_id": meta.ID,
			"time":    row.Time,
			"players": row.Players,
		}, nil)
		return
	}

	teamName := e.normalizer.Normalize(scoring, e.registry.Teams())

	scorer := players[0]
	e.registry.RecordGoal(teamName, scorer.FullName(), scorer.Number, meta)
	logger.IncrCounter("goals.attributed")
	logger.Debug("Goal", logger.Fields{
		"date":   meta.Date,
		"team":   teamName,
		"group":  meta.Group,
		"number": scorer.Number,
		"player": scorer.FullName(),
	})

	for _, assist := range players[1:] {
		e.registry.RecordAssist(teamName, assist.FullName(), assist.Number, meta)
		logger.IncrCounter("assists.attributed")
		logger.Debug("Assist", logger.Fields{
			"date":   meta.Date,
			"team":   teamName,
			"number": assist.Number,
			"player": assist.FullName(),
		})
	}
}

func (e *Extractor) recordPenalty(row EventRow, minutes int, meta stats.Game) {
	if parse.IsTeamPenalty(row.Players) {
		logger.Debug("Team penalty", logger.Fields{
			"game_id": meta.ID,
			"team":    row.Team,
			"minutes": minutes,
		})
		return
	}

	player, ok := parse.ParsePenaltyPlayer(row.Players)
	if !ok {
		logger.Warn("Could not parse penalty player", logger.Fields{
			"game_id": meta.ID,
			"time":    row.Time,
			"players": row.Players,
		})
		return
	}

	if strings.TrimSpace(row.Team) == "" {
		logger.Warn("Skipping penalty without team", logger.Fields{
			"game_id": meta.ID,
			"time":    row.Time,
			"players": row.Players,
		})
		return
	}

	teamName := e.normalizer.Normalize(row.Team, e.registry.Teams())
	e.registry.RecordPenalty(teamName, player.FullName(), player.Number, minutes, meta)
	logger.IncrCounter("penalties.recorded")
	logger.Debug("Penalty", logger.Fields{
		"team":    teamName,
		"number":  player.Number,
		"player":  player.FullName(),
		"minutes": minutes,
	})
}
