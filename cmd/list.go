package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/avelis/countdowntab/internal/pipeline"
	"github.com/avelis/countdowntab/internal/viewmodel"
)

var (
	listPage  int
	listTable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events with countdowns",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page to show")
	listCmd.Flags().BoolVar(&listTable, "table", false, "Flat table output for the page")
}

func runList(cmd *cobra.Command, args []string) error {
	s, cfg := openStore()

	events, err := s.Events()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(events) == 0 {
		fmt.Println("No events yet. Add your first event!")
		return nil
	}

	now := time.Now()
	pipeline.Sort(events, now.Location())
	paged := pipeline.Paginate(events, cfg.PageSize)

	// An out-of-range page request is a no-op: stay on the first page, the
	// same way an invalid page-dot click does nothing.
	page := 1
	if listPage != page && pipeline.CanNavigate(page, listPage, paged.TotalPages) {
		page = listPage
	}

	pv := viewmodel.BuildPage(paged, page, now)
	if listTable {
		printTable(pv)
	} else {
		printPage(pv)
	}
	printPagination(pv)
	return nil
}

// countdownText joins a countdown value and label ("3 Days", "2h 0m", "Passed").
func countdownText(value, label string) string {
	if label == "" {
		return value
	}
	return value + " " + label
}

// printPage renders grouped output: single-member groups as plain entries,
// larger groups as a header with indented members.
func printPage(pv viewmodel.PageView) {
	header := color.New(color.Bold)

	for _, g := range pv.Groups {
		if g.Count == 1 {
			printEntry(g.Entries[0], "")
			continue
		}
		header.Printf("%s · %s", g.DisplayDate, g.CountLabel)
		fmt.Printf("  %s\n", countdownText(g.CountdownValue, g.CountdownLabel))
		for _, e := range g.Entries {
			printEntry(e, "  ")
		}
	}
}

func printEntry(e viewmodel.EventView, indent string) {
	when := color.New(color.Faint).Sprintf("%s · %s", e.DisplayDate, e.DisplayWhen)
	cd := countdownText(e.CountdownValue, e.CountdownLabel)
	if e.IsHours {
		cd = color.New(color.FgYellow).Sprint(cd)
	}
	fmt.Printf("%s%-28s %s  %s\n", indent, e.Name, when, cd)
}

// printTable renders the current page as a flat table, ids included so edit
// and remove targets are easy to copy.
func printTable(pv viewmodel.PageView) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "EVENT", "DATE", "TIME", "COUNTDOWN")
	for _, g := range pv.Groups {
		for _, e := range g.Entries {
			table.AddRow(e.ID, e.Name, e.DisplayDate, e.DisplayWhen, countdownText(e.CountdownValue, e.CountdownLabel))
		}
	}
	fmt.Println(table)
}

// printPagination prints the page indicator; a single page shows no chrome.
func printPagination(pv viewmodel.PageView) {
	if pv.TotalPages <= 1 {
		return
	}
	dots := make([]string, pv.TotalPages)
	for i := range dots {
		if i+1 == pv.Page {
			dots[i] = color.New(color.Bold).Sprint("●")
		} else {
			dots[i] = "○"
		}
	}
	fmt.Printf("\nPage %d of %d  %s\n", pv.Page, pv.TotalPages, strings.Join(dots, " "))
}
