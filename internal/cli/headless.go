package cli

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"bouncy/app"
	"bouncy/hal"

	"github.com/spf13/cobra"
)

func newHeadlessCmd(o *options) *cobra.Command {
	var (
		hz       int
		ticks    uint64
		pace     bool
		snapshot string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window at a fixed frame delta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			if hz <= 0 {
				return fmt.Errorf("hz must be positive (got %d)", hz)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			var snapErr error
			hc := hal.HeadlessConfig{
				Window: cfg.Window(),
				Hz:     hz,
				Ticks:  ticks,
				Pace:   pace,
			}
			if snapshot != "" {
				hc.Done = func(fb hal.Framebuffer) { snapErr = writeSnapshot(snapshot, fb) }
			}
			if err := hal.RunHeadless(ctx, hc, app.Factory(cfg)); err != nil {
				return err
			}
			if snapErr != nil {
				return fmt.Errorf("snapshot: %w", snapErr)
			}
			if snapshot != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", snapshot)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&hz, "hz", 120, "frames per simulated second")
	f.Uint64Var(&ticks, "ticks", 600, "stop after this many frames (0 = until interrupted)")
	f.BoolVar(&pace, "pace", false, "sleep between frames to run at real time")
	f.StringVar(&snapshot, "snapshot", "", "write the last frame to this PNG file")
	return cmd
}

func writeSnapshot(path string, fb hal.Framebuffer) error {
	if fb == nil {
		return hal.ErrNoFramebuffer
	}
	img := hal.Snapshot(fb)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		return errors.Join(err, f.Close())
	}
	return f.Close()
}
