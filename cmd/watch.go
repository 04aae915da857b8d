package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/avelis/countdowntab/internal/countdown"
	"github.com/avelis/countdowntab/internal/pipeline"
	"github.com/avelis/countdowntab/internal/viewmodel"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live countdown view, refreshed periodically",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, cfg := openStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render := func() {
		now := time.Now()
		events, err := s.MigrateAndLoad()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		pipeline.Sort(events, now.Location())
		paged := pipeline.Paginate(events, cfg.PageSize)

		// Clear and redraw the whole surface.
		fmt.Print("\033[2J\033[H")
		color.New(color.Bold).Println(countdown.Clock(now))
		fmt.Printf("theme %s · mode %s\n\n", s.Theme(), s.Mode())

		if len(events) == 0 {
			fmt.Println("No events yet. Add your first event!")
			return
		}
		pv := viewmodel.BuildPage(paged, 1, now)
		printPage(pv)
		printPagination(pv)
	}

	render()

	// Periodic re-evaluation keeps displayed countdowns from going stale.
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %ds", cfg.RefreshSeconds), render); err != nil {
		return fmt.Errorf("scheduling refresh: %w", err)
	}
	c.Start()
	defer c.Stop()

	// Preference changes from other surfaces re-render immediately; the
	// stream is best-effort, the next tick catches anything dropped.
	prefs, err := s.WatchPrefs(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: preference watching disabled: %v\n", err)
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case _, ok := <-prefs:
			if !ok {
				prefs = nil
				continue
			}
			render()
		}
	}
}
