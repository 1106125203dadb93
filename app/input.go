package app

import (
	"bouncy/gl3d"
	"bouncy/hal"
)

var actionKeys = [...]struct {
	key hal.KeyCode
	act gl3d.Action
}{
	{hal.KeyW, gl3d.ActionForward},
	{hal.KeyS, gl3d.ActionBack},
	{hal.KeyA, gl3d.ActionStrafeLeft},
	{hal.KeyD, gl3d.ActionStrafeRight},
	{hal.KeyUp, gl3d.ActionRise},
	{hal.KeyDown, gl3d.ActionSink},
	{hal.KeyQ, gl3d.ActionYawLeft},
	{hal.KeyE, gl3d.ActionYawRight},
	{hal.KeyLeft, gl3d.ActionOrbitLeft},
	{hal.KeyRight, gl3d.ActionOrbitRight},
}

// heldActions collects the camera actions for the keys currently down.
func heldActions(kbd hal.Keyboard) gl3d.Action {
	if kbd == nil {
		return 0
	}
	var in gl3d.Action
	for _, k := range actionKeys {
		if kbd.Down(k.key) {
			in |= k.act
		}
	}
	return in
}
