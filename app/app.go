// Package app wires the simulation, the scenes and the HAL into a frame loop.
package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"bouncy/canvas"
	"bouncy/hal"
	"bouncy/sim"
)

// State is the app lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

var errNotStarted = errors.New("app not started")

// App owns every scene and steps them one frame at a time.
type App struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	state State
	fb    hal.Framebuffer
	c     *canvas.Canvas

	scene   SceneKind
	bound   bool
	world   *sim.World
	stepper sim.FixedStepper
	world3d *worldScene
	gallery *gallery

	con         *console
	showConsole bool

	fps       fpsCounter
	snd       blipper
	frames    uint64
	nextStats float64
}

// New checks cfg and binds the app to h. Nothing is created until Start.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &App{h: h, cfg: cfg, log: h.Logger()}, nil
}

// Start moves the app from Uninitialized to Running.
func (a *App) Start() error {
	if a.state != StateUninitialized {
		return fmt.Errorf("app: start in state %v", a.state)
	}
	var fb hal.Framebuffer
	if d := a.h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return hal.ErrNoFramebuffer
	}
	a.fb = fb
	a.c = canvas.New(fb)
	w, h := fb.Width(), fb.Height()

	a.con = newConsole(w)
	a.log = &consoleLog{base: a.h.Logger(), con: a.con}
	a.showConsole = a.cfg.Console

	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	a.world = sim.NewWorld(rng, a.cfg.Balls, w, h, a.cfg.Reflect)
	a.stepper = sim.FixedStepper{Step: a.cfg.FixedStep}

	ws, err := newWorldScene(fb, a.cfg.Workers)
	if err != nil {
		return fmt.Errorf("create world scene: %w", err)
	}
	a.world3d = ws
	a.gallery = newGallery()

	if a.cfg.Sound {
		a.snd = blipper{audio: a.h.Audio(), log: a.log}
		if a.snd.audio == nil {
			a.logf("sound: no audio device")
		}
	}

	a.state = StateRunning
	a.setScene(a.cfg.Scene)
	a.nextStats = a.cfg.StatsEvery
	a.logf("bouncy: %dx%d balls=%d seed=%d reflect=%v fixed-step=%v workers=%d",
		w, h, a.cfg.Balls, seed, a.cfg.Reflect, a.cfg.FixedStep, a.cfg.Workers)
	return nil
}

// Frame runs one frame: close check, input, simulation, render, present.
func (a *App) Frame() (err error) {
	switch a.state {
	case StateClosed:
		return hal.ErrClosed
	case StateUninitialized:
		return errNotStarted
	}
	defer a.recoverFrame(&err)

	if win := a.h.Window(); win != nil && win.ShouldClose() {
		a.Close()
		return hal.ErrClosed
	}

	a.handleKeys()

	dt, now := a.timing()
	a.fps.tick(dt)
	a.frames++

	switch a.scene {
	case SceneBalls:
		var hits int
		a.stepper.Advance(dt, func(step float32) {
			hits += a.world.Step(step).Total()
		})
		if a.cfg.Sound {
			a.snd.bounce(now, hits)
		}
		renderBalls(a.c, a.world, hud{Width: a.fb.Width(), FPS: a.fps.value()})
	case SceneWorld:
		var kbd hal.Keyboard
		if in := a.h.Input(); in != nil {
			kbd = in.Keyboard()
		}
		a.world3d.update(heldActions(kbd), dt, now)
		if err := a.world3d.render(a.c, a.fps.value()); err != nil {
			return err
		}
	case SceneGallery:
		a.gallery.render(a.c, hud{Width: a.fb.Width(), FPS: a.fps.value()})
	}

	if a.showConsole {
		a.c.CopyFrom(a.con.fb, 0, a.fb.Height()-consoleHeight)
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	if a.cfg.StatsEvery > 0 && now >= a.nextStats {
		a.nextStats = now + a.cfg.StatsEvery
		a.logf("stats: frames=%d fps=%d scene=%v bounces=%d", a.frames, a.fps.value(), a.scene, a.world.Bounced.Total())
	}
	return nil
}

// Close moves the app to Closed. It is safe to call more than once.
func (a *App) Close() {
	if a.state == StateClosed {
		return
	}
	a.state = StateClosed
	a.logf("bouncy: closed after %d frames", a.frames)
}

func (a *App) State() State { return a.state }

// World is the balls simulation, nil before Start.
func (a *App) World() *sim.World { return a.world }

// Scene is the scene currently shown.
func (a *App) Scene() SceneKind { return a.scene }

// Factory returns a HAL app factory that builds and starts an App from cfg.
func Factory(cfg Config) hal.AppFactory {
	return func(h hal.HAL) (hal.StepFunc, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if err := a.Start(); err != nil {
			return nil, err
		}
		return a.Frame, nil
	}
}

func (a *App) timing() (dt float32, now float64) {
	clk := a.h.Clock()
	if clk == nil {
		return 0, 0
	}
	return clk.FrameDelta(), clk.Now()
}

func (a *App) handleKeys() {
	in := a.h.Input()
	if in == nil {
		return
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return
	}
	events := kbd.Events()
	for {
		select {
		case ev := <-events:
			if ev.Press {
				a.onKey(ev.Code)
			}
		default:
			return
		}
	}
}

func (a *App) onKey(code hal.KeyCode) {
	switch code {
	case hal.KeyF1:
		a.setScene(SceneBalls)
	case hal.KeyF2:
		a.setScene(SceneWorld)
	case hal.KeyF3:
		a.setScene(SceneGallery)
	case hal.KeyF4:
		a.showConsole = !a.showConsole
	case hal.KeyTab:
		if a.scene == SceneWorld {
			a.logf("camera: %v", a.world3d.nextCamera())
		}
	}
}

// setScene switches scenes. The world scene uses Q for yaw, so Escape quits there.
func (a *App) setScene(k SceneKind) {
	if a.bound && k == a.scene {
		return
	}
	a.scene = k
	a.bound = true
	exit := hal.KeyQ
	if k == SceneWorld {
		exit = hal.KeyEscape
	}
	if win := a.h.Window(); win != nil {
		win.SetExitKey(exit)
	}
	a.logf("scene: %v (exit key %v)", k, exit)
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
