package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"olysched/calendar"
	"olysched/digest"
)

func icalCmd() *cobra.Command {
	var date string
	var output string

	c := &cobra.Command{
		Use:   "ical",
		Short: "Export the team's events for a day as an iCalendar file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}

			day, err := e.resolveDay(date)
			if err != nil {
				return err
			}

			schedule, err := e.client.FetchDay(cmd.Context(), day.Format("2006-01-02"))
			if err != nil {
				return fmt.Errorf("failed to fetch the schedule: %w", err)
			}

			relevant := digest.RelevantUnits(schedule.Units, e.cfg.NOC)
			ics := calendar.Build(relevant, e.loc)

			if err := os.WriteFile(output, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing calendar to %s: %w", output, err)
			}
			fmt.Printf("Wrote %d events to %s\n", len(relevant), output)
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "Schedule date YYYY-MM-DD (default: today in the configured timezone)")
	c.Flags().StringVarP(&output, "output", "o", "schedule.ics", "Output file")
	return c
}
