package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/display"
	"github.com/agent-platform/tools/yearprogress/internal/progress"
)

// For testing
var (
	selectFunc = selectOption
)

func selectOption(message string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func pickOption(e catalog.Entry) string {
	return fmt.Sprintf("%s %s (%s)", catalog.Flag(e.CountryCode), catalog.DisplayName(e.City, e.Country), e.Timezone)
}

var pickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Choose a location and print its progress",
	Long: `Prompts for a location from the timezone catalog, optionally narrowed
by a query, then prints year progress there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		entries := a.full.Search(query)
		if len(entries) == 0 {
			return fmt.Errorf("no timezones found matching %q", query)
		}

		options := make([]string, len(entries))
		byOption := make(map[string]catalog.Entry, len(entries))
		for i, e := range entries {
			options[i] = pickOption(e)
			byOption[options[i]] = e
		}

		choice, err := selectFunc(fmt.Sprintf("Choose a location (%d available)", len(entries)), options)
		if err != nil {
			return fmt.Errorf("select location: %w", err)
		}
		e, ok := byOption[choice]
		if !ok {
			return fmt.Errorf("unknown selection %q", choice)
		}

		now := time.Now()
		loc := e.Location()
		p, err := progress.Compute(loc.Timezone, a.cfg.TargetYear, now)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}
		display.Render(cmd.OutOrStdout(), loc, p, now)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
