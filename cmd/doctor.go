package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/doctor"
	"github.com/agent-platform/tools/yearprogress/internal/localzone"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and location sources",
	Long: `Runs a health check on everything location detection relies on:

  - Config file presence
  - Catalog database integrity (when catalog.database is set)
  - Zone-to-country table
  - System timezone detection
  - default_timezone is a catalog entry
  - IP geolocation reachability (when geoip.enabled)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		env := doctor.Env{
			Config:     a.cfg,
			ConfigPath: a.cfgPath,
			Catalog:    a.cat,
			Countries:  a.countries,
			Zone:       localzone.System,
			GeoIP:      a.geoIP(),
		}

		if fails := doctor.Run(ctx, cmd.OutOrStdout(), env); fails > 0 {
			return fmt.Errorf("%d check(s) failed", fails)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
