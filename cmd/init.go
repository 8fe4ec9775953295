package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Creates the configuration directory and a commented config file at ~/.yearprogress/config.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("determine config path: %w", err)
			}
		}
		out := cmd.OutOrStdout()

		// Existing files are rewritten with new keys merged in.
		if _, err := os.Stat(path); err == nil {
			cfg, loadErr := config.Load(path)
			if loadErr != nil {
				return fmt.Errorf("load existing config: %w", loadErr)
			}
			if err := config.SaveWithComments(path, cfg); err != nil {
				return fmt.Errorf("update config: %w", err)
			}
			fmt.Fprintf(out, "Configuration updated at %s (merged new defaults)\n", path)
			return nil
		}

		cfg := config.DefaultConfig()
		if err := config.SaveWithComments(path, &cfg); err != nil {
			return fmt.Errorf("create config: %w", err)
		}

		fmt.Fprintf(out, "Configuration initialized at %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Set default_timezone or disable geoip if you prefer:")
		fmt.Fprintf(out, "     %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  2. Check what gets detected:")
		fmt.Fprintln(out, "     yearprogress locate")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  3. Watch the year go by:")
		fmt.Fprintln(out, "     yearprogress watch")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
