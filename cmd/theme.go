package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelis/countdowntab/internal/model"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme and light/dark mode",
	Long: `theme shows the stored appearance preferences. With arguments it updates one:

  countdowntab theme set theme matcha
  countdowntab theme set mode dark

Available themes: ` + strings.Join(model.Themes, ", ") + `
Available modes:  ` + strings.Join(model.Modes, ", "),
	Args: cobra.MaximumNArgs(3),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	s, _ := openStore()

	if len(args) == 0 {
		fmt.Printf("theme: %s\nmode:  %s\n", s.Theme(), s.Mode())
		return nil
	}
	if len(args) != 3 || args[0] != "set" {
		return fmt.Errorf("usage: theme set {theme|mode} <value>")
	}

	key, value := args[1], args[2]
	switch key {
	case "theme":
		if !model.ValidTheme(value) {
			return fmt.Errorf("unknown theme %q, pick one of: %s", value, strings.Join(model.Themes, ", "))
		}
		if err := s.SetTheme(value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	case "mode":
		if !model.ValidMode(value) {
			return fmt.Errorf("unknown mode %q, pick one of: %s", value, strings.Join(model.Modes, ", "))
		}
		if err := s.SetMode(value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	default:
		return fmt.Errorf("unknown preference %q, expected theme or mode", key)
	}

	fmt.Printf("Saved %s = %s\n", key, value)
	return nil
}
