package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/config"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
)

var zonesExport string

var zonesCmd = &cobra.Command{
	Use:   "zones [query]",
	Short: "List known timezones",
	Long: `Lists the timezone catalog, plus every zone in the zone table, with each
zone's current UTC offset.

An optional query filters by city, country or timezone. --export writes the
catalog to a SQLite database usable as catalog.database in the config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if zonesExport != "" {
			path := config.ExpandHome(zonesExport)
			if err := catalog.ExportSQLite(ctx, path, a.cat); err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}
			fmt.Fprintf(out, "Exported %d timezones to %s\n", a.cat.Len(), path)
			return nil
		}

		query := strings.Join(args, " ")
		entries := a.full.Search(query)
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.Dimf("No timezones found matching %q.", query))
			return nil
		}

		now := time.Now()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"", "City", "Country", "Timezone", "Offset"})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, e := range entries {
			table.Append([]string{
				catalog.Flag(e.CountryCode),
				e.City,
				e.Country,
				e.Timezone,
				catalog.FormatOffset(e.CurrentOffset(now)),
			})
		}
		table.Render()

		fmt.Fprintln(out, ui.Dimf("%d of %d timezones", len(entries), a.full.Len()))
		return nil
	},
}

func init() {
	zonesCmd.Flags().StringVar(&zonesExport, "export", "", "write the catalog to a SQLite database at this path")
	rootCmd.AddCommand(zonesCmd)
}
