package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/calendar"
	"github.com/pfrederiksen/hockey-stats/internal/extract"
	"github.com/pfrederiksen/hockey-stats/internal/filter"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/report"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/pfrederiksen/hockey-stats/internal/storage"
	"github.com/pfrederiksen/hockey-stats/internal/team"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultSchedule is the competition walked when no --schedule is given (SHL)
const DefaultSchedule = "18263"

// CalendarFile is the name of the game calendar export
const CalendarFile = "games.ics"

const (
	envBaseURL  = "HOCKEY_STATS_BASE_URL"
	envLogLevel = "LOG_LEVEL"
)

var (
	flagSchedules []string
	flagBaseURL   string
	flagOutDir    string
	flagFormat    string
	flagSort      string
	flagQuiet     bool
	flagXLSX      bool
	flagICS       bool
	flagTeams     []string
	flagGroups    []string
	flagDates     string
	flagTimeout   time.Duration
	flagVerbose   bool
	flagLogLevel  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hockey-stats",
		Short: "Collect player statistics from Swedish hockey game reports",
		Long: `A CLI tool that walks a competition schedule on stats.swehockey.se,
reads every game's lineups and play-by-play, and reports games played,
goals, assists and penalty minutes per player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStats,
	}

	// Define flags
	cmd.Flags().StringSliceVar(&flagSchedules, "schedule", []string{DefaultSchedule}, "Schedule ID(s) to walk")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", scraper.DefaultBaseURL, "Statistics site base URL (env "+envBaseURL+")")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory for export files")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Console output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", string(SortByRegistry), "Player order: registry, points, goals, pim or name")
	cmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Do not print the console report")
	cmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "Also write "+report.WorkbookFile)
	cmd.Flags().BoolVar(&flagICS, "ics", false, "Also write "+CalendarFile)
	cmd.Flags().StringArrayVar(&flagTeams, "team", nil, "Only report teams containing this text (repeatable)")
	cmd.Flags().StringArrayVar(&flagGroups, "group", nil, "Only report games in groups containing this text (repeatable)")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Only report games in a date range, e.g. 2025-09-01..2025-12-31")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.Timeout, "HTTP timeout per page")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (env "+envLogLevel+")")

	return cmd
}

// runStats is the main command logic
func runStats(cmd *cobra.Command, args []string) error {
	if err := configureLogging(cmd.ErrOrStderr()); err != nil {
		return err
	}

	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if !order.Valid() {
		return fmt.Errorf("invalid sort order: %s", flagSort)
	}

	f, err := buildFilter()
	if err != nil {
		return err
	}

	schedules := scheduleIDs(flagSchedules)
	if len(schedules) == 0 {
		return fmt.Errorf("--schedule is required")
	}

	baseURL := flagBaseURL
	if !cmd.Flags().Changed("base-url") {
		if env := os.Getenv(envBaseURL); env != "" {
			baseURL = env
		}
	}

	// Initialize storage
	store, err := storage.New(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(baseURL, flagTimeout)
	registry := stats.NewRegistry()
	normalizer := team.NewNormalizer(nil)
	ex := extract.New(sc, registry, normalizer)

	started := time.Now()
	var games []extract.Game
	for _, id := range schedules {
		walked, err := ex.Walk(id)
		if err != nil {
			return fmt.Errorf("walking schedule %s: %w", id, err)
		}
		games = append(games, walked...)
	}

	logger.Debug("Team code resolutions", logger.Fields{
		"mappings": normalizer.Cache().Mappings(),
	})

	players := f.Players(registry.Players())
	sortPlayers(players, order)
	link := report.LinkFunc(sc.GameLink)

	files, err := writeExports(store, players, f.Games(games), link)
	if err != nil {
		return err
	}

	snapshot := logger.GetMetricsSnapshot()
	fields := snapshot.Fields()
	fields["duration"] = time.Since(started).String()
	fields["players"] = registry.Len()
	logger.Info("Run complete", fields)

	if flagQuiet {
		return nil
	}

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Schedules:   schedules,
		GameCount:   len(games),
		PlayerCount: len(players),
		Teams:       report.GroupByTeam(players),
		Files:       files,
	}
	if !f.IsEmpty() {
		result.Filter = f.String()
	}

	// Write output
	if err := WriteOutput(cmd.OutOrStdout(), result, format, link); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// writeExports writes every export file and returns their paths
func writeExports(store *storage.Storage, players []*stats.Player, games []extract.Game, link report.LinkFunc) ([]string, error) {
	var files []string

	path, err := store.WriteFile(report.PlayerStatsFile, func(w io.Writer) error {
		return report.WritePlayerStats(w, players)
	})
	if err != nil {
		return nil, err
	}
	files = append(files, path)

	path, err = store.WriteFile(report.PlayerEventsFile, func(w io.Writer) error {
		return report.WriteEvents(w, players, link)
	})
	if err != nil {
		return nil, err
	}
	files = append(files, path)

	if flagXLSX {
		path, err = store.WriteFile(report.WorkbookFile, func(w io.Writer) error {
			return report.WriteWorkbook(w, players, link)
		})
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	if flagICS {
		ics := calendar.GenerateBulkICS(games, "Hockey games", calendar.LinkFunc(link))
		if ics == "" {
			logger.Warn("No games to put in calendar", logger.Fields{"games": len(games)})
		} else {
			path, err = store.WriteString(CalendarFile, ics)
			if err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}

	for _, p := range files {
		logger.Info("Wrote report", logger.Fields{"path": p})
	}
	return files, nil
}

// configureLogging installs the default logger. --log-level wins over
// LOG_LEVEL; --verbose selects debug when neither is set.
func configureLogging(w io.Writer) error {
	level := logger.LevelInfo
	name := flagLogLevel
	if name == "" {
		name = os.Getenv(envLogLevel)
	}

	switch {
	case name != "":
		parsed, err := logger.ParseLevel(name)
		if err != nil {
			return err
		}
		level = parsed
	case flagVerbose:
		level = logger.LevelDebug
	}

	logger.SetDefault(logger.New(level, w))
	logger.SetDefaultMetrics(logger.NewMetrics())
	return nil
}

func buildFilter() (*filter.Filter, error) {
	f := filter.NewFilter()
	f.Teams = nonEmpty(flagTeams)
	f.Groups = nonEmpty(flagGroups)

	if strings.TrimSpace(flagDates) != "" {
		from, to, err := filter.ParseDateRange(flagDates)
		if err != nil {
			return nil, fmt.Errorf("invalid --dates: %w", err)
		}
		f.DateFrom, f.DateTo = from, to
	}
	return f, nil
}

// scheduleIDs trims and de-duplicates schedule IDs, keeping their order
func scheduleIDs(ids []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range nonEmpty(ids) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func nonEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
