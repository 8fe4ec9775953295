package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/localzone"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
)

var locateJSON bool

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the detected location",
	Long: `Runs location detection and prints the result together with the
strategy that produced it: system, geoip, zone or default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		r := a.resolver()
		res := r.Resolve(ctx)
		out := cmd.OutOrStdout()

		if locateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		system, err := localzone.System()
		if err != nil {
			system = ui.Dimf("unknown")
		}

		loc := res.Location
		fmt.Fprintf(out, "%s %s\n", catalog.Flag(loc.CountryCode), ui.Boldf("%s", loc.DisplayName))
		fmt.Fprintf(out, "  %-12s %s\n", "Timezone", loc.Timezone)
		fmt.Fprintf(out, "  %-12s %s\n", "Country", loc.CountryCode)
		fmt.Fprintf(out, "  %-12s %s\n", "Source", ui.SourceColor(res.Source))
		fmt.Fprintf(out, "  %-12s %s\n", "System zone", system)
		fmt.Fprintf(out, "  %-12s %s\n", "Strategies", ui.Dimf("%s", strings.Join(r.Strategies(), " → ")))
		return nil
	},
}

func init() {
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "print JSON")
	rootCmd.AddCommand(locateCmd)
}
