package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/display"
	"github.com/agent-platform/tools/yearprogress/internal/progress"
)

var (
	showZone string
	showAt   string
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print year progress once",
	Long: `Prints the progress of the target year in your local timezone.

Without --zone the location is detected. --at evaluates progress at a
given RFC 3339 instant instead of now.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		now := time.Now()
		if showAt != "" {
			now, err = time.Parse(time.RFC3339, showAt)
			if err != nil {
				return fmt.Errorf("parse --at: %w", err)
			}
		}

		var loc catalog.Location
		if showZone != "" {
			loc, err = a.zoneLocation(ctx, showZone)
			if err != nil {
				return err
			}
		} else {
			loc = a.resolver().Detect(ctx)
		}

		p, err := progress.Compute(loc.Timezone, a.cfg.TargetYear, now)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}

		out := cmd.OutOrStdout()
		if showJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Location catalog.Location  `json:"location"`
				Progress progress.Progress `json:"progress"`
			}{loc, p})
		}
		display.Render(out, loc, p, now)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showZone, "zone", "", "IANA timezone to use instead of detection")
	showCmd.Flags().StringVar(&showAt, "at", "", "evaluate at this RFC 3339 instant")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print JSON")
	rootCmd.AddCommand(showCmd)
}
