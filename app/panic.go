package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"bouncy/canvas"
	"bouncy/shapes"
)

const crashTextSize = 10

// recoverFrame turns a panic inside Frame into a crash screen, a logged stack
// and a returned error. The app is Closed afterwards.
func (a *App) recoverFrame(err *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	a.logf("bouncy panic: %v", r)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			a.logf("%s", line)
		}
	}

	lines := []string{"Bouncy Panic:", fmt.Sprintf("panic: %v", r), "stack:"}
	lines = append(lines, strings.Split(string(stack), "\n")...)
	if a.c != nil {
		drawCrash(a.c, lines)
		_ = a.fb.Present()
	}

	a.state = StateClosed
	*err = fmt.Errorf("frame panic: %v", r)
}

// drawCrash fills the canvas with lines of black text on white, wrapped to the
// canvas width, until the screen is full.
func drawCrash(c *canvas.Canvas, lines []string) {
	c.Clear(shapes.White)
	w, h := c.Bounds()
	cw := c.TextWidth("0", crashTextSize)
	lh := canvas.LineHeight(crashTextSize)
	if cw <= 0 || lh <= 0 {
		return
	}
	cols := max(w/cw, 1)

	y := 0
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", "  ")
		if line == "" {
			continue
		}
		for len(line) > 0 {
			if y+lh > h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(chunk, 0, y, crashTextSize, shapes.Black)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
