package extract

import (
	"fmt"
	"strings"
)

// Layout names where a schedule table keeps the matchup and the results link
type Layout string

const (
	// LayoutStandard has the matchup in "Game" and score plus link in "Result"
	LayoutStandard Layout = "standard"

	// LayoutCombined has the matchup in "Result" and score plus link in the
	// first column without a header (used by top-division schedules)
	LayoutCombined Layout = "combined"
)

// Columns holds the column index of each schedule field; -1 when absent
type Columns struct {
	Date    int
	Matchup int
	Result  int
	Venue   int
	Group   int
}

// DetectLayout picks the layout from the header names and the first data row.
// The layout whose results column holds a game link in the first row wins.
// When neither does, LayoutStandard is assumed if there is a Game column and
// LayoutCombined otherwise.
func DetectLayout(header []string, first []Cell) (Layout, Columns, error) {
	date := columnIndex(header, "Date")
	result := columnIndex(header, "Result")
	if date < 0 || result < 0 {
		return "", Columns{}, fmt.Errorf("%w: header %q", ErrNoScheduleTable, header)
	}

	game := columnIndex(header, "Game")
	blank := blankColumn(header)
	cols := Columns{
		Date:  date,
		Venue: columnIndex(header, "Venue"),
		Group: columnIndex(header, "Group"),
	}

	if !cellAt(first, result).HasGameLink() && blank >= 0 && cellAt(first, blank).HasGameLink() {
		cols.Matchup, cols.Result = result, blank
		return LayoutCombined, cols, nil
	}

	if game < 0 {
		if blank < 0 {
			return "", Columns{}, fmt.Errorf("%w: no Game column in %q", ErrNoScheduleTable, header)
		}
		// Nothing linked yet, but only the combined layout fits the header
		cols.Matchup, cols.Result = result, blank
		return LayoutCombined, cols, nil
	}
	cols.Matchup, cols.Result = game, result
	return LayoutStandard, cols, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.Contains(h, name) {
			return i
		}
	}
	return -1
}

func blankColumn(header []string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			return i
		}
	}
	return -1
}

// cellAt returns the cell at index i, or an empty cell when the row is short
func cellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return Cell{}
	}
	return row[i]
}
