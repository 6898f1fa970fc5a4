// Command daygridsvg renders one day of calendar events as an SVG day
// column, using the daygrid layout pipeline to resolve overlapping events.
//
// Input is either a YAML schedule (see --schedule) or an iCalendar file
// filtered to one date (--ics with --date).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/daygrid"
)

var (
	logger zerolog.Logger

	schedulePath string
	icsPath      string
	dateArg      string
	outPath      string
	colWidth     float64
	colHeight    float64
	budget       time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "daygridsvg",
	Short: "daygridsvg - render a day of events as an SVG column",
	Long: "daygridsvg lays out one day of calendar events in a vertical column, " +
		"splitting the column width among events that overlap in time, and writes " +
		"the result as SVG.",
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute the layout and write the SVG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&schedulePath, "schedule", "", "YAML schedule file")
	renderCmd.Flags().StringVar(&icsPath, "ics", "", "iCalendar (.ics) file")
	renderCmd.Flags().StringVar(&dateArg, "date", "", "day to render from the .ics file (YYYY-MM-DD)")
	renderCmd.Flags().StringVar(&outPath, "out", "day.svg", "output SVG path")
	renderCmd.Flags().Float64Var(&colWidth, "width", 400, "column width in SVG units")
	renderCmd.Flags().Float64Var(&colHeight, "height", 1440, "column height in SVG units")
	renderCmd.Flags().DurationVar(&budget, "budget", 0, "override the placement search budget (0 = library default)")
	rootCmd.AddCommand(renderCmd)
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	var (
		sched *schedule
		err   error
	)
	switch {
	case schedulePath != "":
		sched, err = loadYAMLSchedule(schedulePath)
	case icsPath != "":
		if dateArg == "" {
			return fmt.Errorf("--ics requires --date")
		}
		var day time.Time
		day, err = time.ParseInLocation("2006-01-02", dateArg, time.Local)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
		sched, err = loadICSSchedule(icsPath, day)
	default:
		return fmt.Errorf("one of --schedule or --ics is required")
	}
	if err != nil {
		return err
	}
	if sched.Column.Width <= 0 {
		sched.Column.Width = colWidth
	}
	if sched.Column.Height <= 0 {
		sched.Column.Height = colHeight
	}

	cfg := daygrid.Config{ColumnWidth: sched.Column.Width, ColumnHeight: sched.Column.Height}
	opts := []daygrid.Option{daygrid.WithLogger(logger)}
	if budget > 0 {
		opts = append(opts, daygrid.WithTimeLimit(budget))
	}

	done := make(chan daygrid.Solution, 1)
	job, err := daygrid.NewJob(cfg, func(_ *daygrid.Job, sol daygrid.Solution) {
		done <- sol
	}, opts...)
	if err != nil {
		return err
	}
	job.Start(sched.Events)
	sol := <-done
	if sol == nil {
		return fmt.Errorf("layout cancelled")
	}
	logger.Info().Int("events", len(sol)).Str("out", outPath).Msg("layout computed")

	svg := renderSVG(cfg, sol, sched.Titles)

	return os.WriteFile(outPath, []byte(svg), 0o644)
}
