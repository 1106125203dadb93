// Package cli is the bouncy command line.
package cli

import (
	"bouncy/app"
	"bouncy/hal"
	"bouncy/sim"

	"github.com/spf13/cobra"
)

// options are the flag values shared by every command.
type options struct {
	cfg     app.Config
	scene   string
	reflect string
}

// config parses the string flags into o.cfg and validates the result.
func (o *options) config() (app.Config, error) {
	cfg := o.cfg
	var err error
	if cfg.Scene, err = app.ParseScene(o.scene); err != nil {
		return cfg, err
	}
	if cfg.Reflect, err = sim.ParseReflect(o.reflect); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runner opens the window. Tests swap it out.
type runner func(cfg hal.WindowConfig, newApp hal.AppFactory) error

func newRootCmd(run runner) *cobra.Command {
	o := &options{cfg: app.DefaultConfig(), scene: "balls", reflect: "reference"}

	root := &cobra.Command{
		Use:   "bouncy",
		Short: "Bouncing balls, a small 3D world and a shape gallery",
		Long: `bouncy opens a window with colored balls bouncing off its edges.

F1, F2 and F3 switch between the balls, the 3D world and the shape gallery.
F4 shows the log console. Q quits (Escape in the 3D world).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			return run(cfg.Window(), app.Factory(cfg))
		},
	}

	f := root.PersistentFlags()
	f.IntVar(&o.cfg.Balls, "balls", o.cfg.Balls, "number of balls")
	f.Uint64Var(&o.cfg.Seed, "seed", 0, "random seed for the ball layout (0 = time based)")
	f.StringVar(&o.scene, "scene", o.scene, "start scene: balls, world or gallery")
	f.StringVar(&o.reflect, "reflect", o.reflect, "wall reflection: reference, directional or clamp")
	f.Float32Var(&o.cfg.FixedStep, "fixed-step", 0, "simulate in fixed steps of this many seconds (0 = frame delta)")
	f.BoolVar(&o.cfg.Sound, "sound", false, "play a blip on bounces")
	f.BoolVar(&o.cfg.Console, "console", false, "show the log console at start")
	f.IntVar(&o.cfg.Scale, "scale", o.cfg.Scale, "window scale factor")
	f.IntVar(&o.cfg.TPS, "tps", o.cfg.TPS, "target frames per second")
	f.IntVar(&o.cfg.Workers, "workers", o.cfg.Workers, "raster bands for the 3D world")

	root.AddCommand(newHeadlessCmd(o), newVersionCmd(), newCompletionCmd(root))
	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return newRootCmd(hal.RunWindow).Execute()
}
