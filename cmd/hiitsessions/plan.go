package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/adibhanna/hiitsessions/internal/interval"
	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

var planMinutes int

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the phase schedule of a session",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().IntVarP(&planMinutes, "minutes", "m", models.DefaultConfig().SessionMinutes, "session length in minutes (1-60)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	segments, err := interval.Schedule(planMinutes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tSTART\tPHASE")
	for _, s := range segments {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Round, interval.FormatClock(s.Start), theme.PhaseLabel(s.Phase))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	work := interval.WorkTime(segments)
	total := time.Duration(planMinutes) * interval.PhaseLength
	fmt.Fprintf(out, "Work %s, rest %s, total %s\n",
		interval.FormatClock(work),
		interval.FormatClock(total-work),
		interval.FormatClock(total),
	)
	return nil
}
