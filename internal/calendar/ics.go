package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/extract"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/parse"
)

const (
	// DefaultStart is the face-off time used when the schedule lists only a date
	DefaultStart = "19:00"

	// GameDuration is the calendar length of one game
	GameDuration = 150 * time.Minute

	uidDomain = "hockey-stats"
)

// LinkFunc returns the results page of a game
type LinkFunc func(gameID string) string

// GenerateBulkICS generates one calendar holding every game. Games whose
// date cannot be read are left out. Returns "" when no game remains.
func GenerateBulkICS(games []extract.Game, calendarName string, link LinkFunc) string {
	var events strings.Builder
	now := time.Now().UTC()
	count := 0

	for _, g := range games {
		start, ok := startTime(g)
		if !ok {
			logger.Warn("Skipping game without calendar date", logger.Fields{
				"game_id": g.ID,
				"date":    g.Date,
				"time":    g.Time,
			})
			continue
		}
		writeEvent(&events, g, start, now, link)
		count++
	}

	if count == 0 {
		return ""
	}

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Hockey Stats//hockey-stats//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if calendarName != "" {
		writeLine(&ics, "X-WR-CALNAME:"+escapeICS(calendarName))
	}
	ics.WriteString(events.String())
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeEvent(ics *strings.Builder, g extract.Game, start, now time.Time, link LinkFunc) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	writeLine(ics, fmt.Sprintf("UID:game-%s@%s", g.ID, uidDomain))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))

	// Floating local times: the schedule lists arena-local face-offs
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatLocalTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatLocalTime(start.Add(GameDuration))))

	writeLine(ics, "SUMMARY:"+escapeICS(summary(g)))

	var description []string
	if g.Group != "" {
		description = append(description, g.Group)
	}
	url := ""
	if link != nil {
		url = link(g.ID)
	}
	if url != "" {
		description = append(description, "Results: "+url)
	}
	if len(description) > 0 {
		writeLine(ics, "DESCRIPTION:"+escapeICS(strings.Join(description, "\n")))
	}

	if g.Venue != "" {
		writeLine(ics, "LOCATION:"+escapeICS(g.Venue))
	}
	if url != "" {
		writeLine(ics, "URL:"+url)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// summary is "Home - Away" without parenthetical notes
func summary(g extract.Game) string {
	home, away, err := parse.SplitMatchup(g.Matchup)
	if err != nil {
		return parse.NormalizeText(g.Matchup)
	}
	return home + " - " + away
}

// startTime combines the game date with its listed time, or DefaultStart
func startTime(g extract.Game) (time.Time, bool) {
	clock := g.Time
	if clock == "" {
		clock = DefaultStart
	}
	t, err := time.Parse("2006-01-02 15:04", g.Date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func formatLocalTime(t time.Time) string {
	return t.Format("20060102T150405")
}

// writeLine writes a content line folded at 75 octets as RFC 5545 requires
func writeLine(ics *strings.Builder, line string) {
	limit := 75
	for len(line) > limit {
		cut := limit
		// Never split a UTF-8 sequence
		for cut > 0 && line[cut]&0xC0 == 0x80 {
			cut--
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n ")
		line = line[cut:]
		// Continuation lines start with a space
		limit = 74
	}
	ics.WriteString(line)
	ics.WriteString("\r\n")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
