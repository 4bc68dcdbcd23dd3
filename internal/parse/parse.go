package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Player is a jersey number plus name as printed on lineup and event pages
type Player struct {
	Number    string
	FirstName string
	LastName  string
}

// FullName returns "FIRSTNAME SURNAME", the form used as registry key
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

var (
	// ErrMalformedPlayer is returned when a player string lacks the number or name separators
	ErrMalformedPlayer = errors.New("malformed player text")

	// ErrMalformedMatchup is returned when a matchup does not split into two teams
	ErrMalformedMatchup = errors.New("malformed matchup text")
)

const nameChars = "\\p{L}'`-"

var (
	// "21. Andersson, Erik" - surnames may span several words ("Van Der Berg")
	playerPattern = regexp.MustCompile(
		`(\d{1,2})\.\s+([` + nameChars + `]+(?:\s+[` + nameChars + `]+)*),\s+([` + nameChars + `]+)`)
	penaltyPlayerPattern = regexp.MustCompile(`^` + playerPattern.String())

	scorePattern      = regexp.MustCompile(`^(\d+)-(\d+)`)
	penaltyPattern    = regexp.MustCompile(`^(\d+) min`)
	teamPenalty       = regexp.MustCompile(`^Team`)
	parentheticalNote = regexp.MustCompile(`\(.*?\)`)
)

// NormalizeText composes decomposed diacritics (NFC), turns every Unicode space
// into a plain space and collapses runs of whitespace.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// CleanTeamName removes parenthetical notes such as "(SHL)" and collapses whitespace
func CleanTeamName(s string) string {
	return NormalizeText(parentheticalNote.ReplaceAllString(s, " "))
}

// SplitMatchup splits "Home (note) - Away (note)" into cleaned home and away names
func SplitMatchup(matchup string) (home, away string, err error) {
	parts := strings.Split(matchup, " - ")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedMatchup, matchup)
	}
	home, away = CleanTeamName(parts[0]), CleanTeamName(parts[1])
	if home == "" || away == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedMatchup, matchup)
	}
	return home, away, nil
}

// NormalizeNumber trims whitespace and leading zeros from a jersey number.
// "07" becomes "7"; "00" becomes "0".
func NormalizeNumber(number string) string {
	number = strings.TrimSpace(number)
	trimmed := strings.TrimLeft(number, "0")
	if trimmed == "" && number != "" {
		return "0"
	}
	return trimmed
}

// ParseLineupPlayer parses a lineup entry "NUMBER. SURNAME, FIRSTNAME".
// Lineup entries are split on separators rather than matched against the name
// pattern, so unusual characters in names are kept as they are.
func ParseLineupPlayer(raw string) (Player, error) {
	text := NormalizeText(raw)

	number, name, ok := strings.Cut(text, ".")
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrMalformedPlayer, text)
	}
	last, first, ok := strings.Cut(name, ",")
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrMalformedPlayer, text)
	}

	p := Player{
		Number:    NormalizeNumber(number),
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
	}
	if p.FirstName == "" || p.LastName == "" {
		return Player{}, fmt.Errorf("%w: %q", ErrMalformedPlayer, text)
	}
	return p, nil
}

// PlaceholderName is the name registered for a lineup entry that could not be parsed
func PlaceholderName(raw string) string {
	return "Invalid format for player: " + NormalizeText(raw)
}

// FindPlayers returns every player mentioned in a players cell, in order.
// For a goal row the first entry is the scorer and the rest are assists.
func FindPlayers(s string) []Player {
	matches := playerPattern.FindAllStringSubmatch(NormalizeText(s), -1)
	players := make([]Player, 0, len(matches))
	for _, m := range matches {
		players = append(players, Player{
			Number:    NormalizeNumber(m[1]),
			LastName:  m[2],
			FirstName: m[3],
		})
	}
	return players
}

// ParsePenaltyPlayer parses the penalized player at the start of a players cell
func ParsePenaltyPlayer(s string) (Player, bool) {
	m := penaltyPlayerPattern.FindStringSubmatch(NormalizeText(s))
	if m == nil {
		return Player{}, false
	}
	return Player{
		Number:    NormalizeNumber(m[1]),
		LastName:  m[2],
		FirstName: m[3],
	}, true
}

// IsTeamPenalty reports whether a players cell names a bench penalty ("Team ...")
func IsTeamPenalty(s string) bool {
	return teamPenalty.MatchString(NormalizeText(s))
}

// ParseScore reads the running score at the start of an event cell ("3-2 (PP1)")
func ParseScore(event string) (home, away int, ok bool) {
	m := scorePattern.FindStringSubmatch(NormalizeText(event))
	if m == nil {
		return 0, 0, false
	}
	home, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

// ParsePenaltyMinutes reads "<N> min" at the start of an event cell.
// The league records a one-minute entry as a two-minute minor.
func ParsePenaltyMinutes(event string) (int, bool) {
	m := penaltyPattern.FindStringSubmatch(NormalizeText(event))
	if m == nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if minutes == 1 {
		minutes = 2
	}
	return minutes, true
}
