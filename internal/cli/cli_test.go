package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bouncy/app"
	"bouncy/hal"
	"bouncy/sim"
)

func execute(t *testing.T, run runner, args ...string) (string, error) {
	t.Helper()
	if run == nil {
		run = func(hal.WindowConfig, hal.AppFactory) error {
			t.Fatalf("window runner called")
			return nil
		}
	}
	var out bytes.Buffer
	root := newRootCmd(run)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestRootDefaults(t *testing.T) {
	var got hal.WindowConfig
	called := false
	_, err := execute(t, func(cfg hal.WindowConfig, f hal.AppFactory) error {
		got, called = cfg, true
		if f == nil {
			t.Fatalf("nil app factory")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatalf("runner not called")
	}
	if got.Width != 512 || got.Height != 512 || got.Title != "Bouncy Balls" || got.TPS != 120 || got.Scale != 1 {
		t.Fatalf("window = %+v", got)
	}
}

func TestRootFlags(t *testing.T) {
	o := &options{cfg: app.DefaultConfig(), scene: "world", reflect: "clamp"}
	o.cfg.Balls = 3
	cfg, err := o.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Scene != app.SceneWorld || cfg.Reflect != sim.ReflectClamp || cfg.Balls != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}

	var tps int
	_, err = execute(t, func(cfg hal.WindowConfig, _ hal.AppFactory) error {
		tps = cfg.TPS
		return nil
	}, "--tps", "60", "--scale", "2", "--balls", "10")
	if err != nil || tps != 60 {
		t.Fatalf("tps = %d, err = %v", tps, err)
	}
}

func TestRootRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--scene", "moon"},
		{"--reflect", "sideways"},
		{"--balls", "-4"},
		{"extra"},
	} {
		if _, err := execute(t, nil, args...); err == nil {
			t.Fatalf("%v accepted", args)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "bouncy ") {
		t.Fatalf("version output = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, nil, "completion", "bash")
	if err != nil || !strings.Contains(out, "bouncy") {
		t.Fatalf("completion: err=%v out=%.40q", err, out)
	}
	if _, err := execute(t, nil, "completion", "tcsh"); err == nil {
		t.Fatalf("tcsh accepted")
	}
}

func TestHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := execute(t, nil, "headless", "--ticks", "5", "--seed", "3", "--balls", "4", "--snapshot", path)
	if err != nil {
		t.Fatalf("headless: %v", err)
	}
	if !strings.Contains(out, "wrote "+path) {
		t.Fatalf("output = %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("snapshot bounds = %v", b)
	}
}

func TestHeadlessRejectsBadHz(t *testing.T) {
	if _, err := execute(t, nil, "headless", "--hz", "0"); err == nil {
		t.Fatalf("hz 0 accepted")
	}
}
