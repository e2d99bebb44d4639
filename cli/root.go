// Package cli wires the olysched commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"olysched/config"
	"olysched/digest"
	"olysched/olympics"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var date string
	var output string

	cmd := &cobra.Command{
		Use:          "olysched",
		Short:        "Daily Olympic schedule digest for a national team",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDigest(cmd.Context(), date, output)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Schedule date YYYY-MM-DD (default: today in the configured timezone)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from config)")

	cmd.AddCommand(serveCmd(), icalCmd())
	return cmd
}

// env collects everything the commands share.
type env struct {
	cfg     *config.Config
	loc     *time.Location
	client  *olympics.Client
	builder *digest.Builder
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	return &env{
		cfg:     cfg,
		loc:     loc,
		client:  olympics.NewClient(cfg.BaseURL, cfg.UserAgent, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.DumpPath),
		builder: digest.NewBuilder(cfg.NOC, cfg.TeamName, cfg.Flag, loc),
	}, nil
}

// resolveDay turns an optional --date flag into the report day in the
// configured timezone.
func (e *env) resolveDay(date string) (time.Time, error) {
	if date == "" {
		return time.Now().In(e.loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, e.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", date, err)
	}
	return day, nil
}

func runDigest(ctx context.Context, date, output string) error {
	e, err := setup()
	if err != nil {
		return err
	}

	day, err := e.resolveDay(date)
	if err != nil {
		return err
	}

	schedule, err := e.client.FetchDay(ctx, day.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to fetch the schedule: %w", err)
	}

	md := e.builder.Build(schedule.Units, day)
	fmt.Print(md)

	if output == "" {
		output = e.cfg.OutputPath
	}
	if err := os.WriteFile(output, []byte(md), 0644); err != nil {
		return fmt.Errorf("writing digest to %s: %w", output, err)
	}
	return nil
}
