package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/display"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
	"github.com/agent-platform/tools/yearprogress/internal/session"
	"github.com/agent-platform/tools/yearprogress/internal/tui"
)

var (
	watchZone     string
	watchPlain    bool
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live year progress view",
	Long: `Shows year progress and refreshes it until interrupted.

The interactive view starts immediately and updates once your location is
detected. Press 'l' to pick a different location and 'q' to quit.
--plain prints a simple refreshing screen without key handling.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := setup(ctx)
		if err != nil {
			return err
		}

		interval := watchInterval
		if interval <= 0 {
			interval = a.cfg.RefreshInterval
		}

		sess := session.New()
		defer sess.Close()

		detect := a.resolver().Detect
		if watchZone != "" {
			loc, err := a.zoneLocation(ctx, watchZone)
			if err != nil {
				return err
			}
			sess.Select(loc)
			detect = nil
		}

		if watchPlain {
			if detect != nil {
				go func() {
					sess.Detected(detect(ctx))
				}()
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "\033[?25l")
			display.Run(ctx, out, sess, display.Options{
				Year:     a.cfg.TargetYear,
				Interval: interval,
				Log:      logging.For("display"),
			})
			fmt.Fprint(out, "\033[?25h")
			fmt.Fprintln(out, "\n  Goodbye!")
			return nil
		}

		opts := tui.Options{
			Context:  ctx,
			Catalog:  a.full,
			Session:  sess,
			Year:     a.cfg.TargetYear,
			Interval: interval,
			Detect:   detect,
		}
		restore := a.logToFile()
		defer restore()
		p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("run interactive view: %w", err)
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchZone, "zone", "", "IANA timezone to use instead of detection")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "plain refreshing output without the interactive picker")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "refresh interval (default from config)")
	rootCmd.AddCommand(watchCmd)
}
