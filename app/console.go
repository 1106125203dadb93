package app

import (
	"bouncy/canvas"
	"bouncy/hal"
	"bouncy/shapes"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const consoleHeight = 128

// console is a tinyterm log view on its own framebuffer. The frame composites it
// onto the bottom of the screen while visible.
type console struct {
	fb   hal.Framebuffer
	term *tinyterm.Terminal
}

func newConsole(width int) *console {
	fb := hal.NewFramebuffer(width, consoleHeight)
	d := canvas.New(fb)
	d.Clear(shapes.Black)

	term := tinyterm.NewTerminal(d)
	term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return &console{fb: fb, term: term}
}

func (c *console) writeLine(s string) {
	_, _ = c.term.Write([]byte(s))
	_, _ = c.term.Write([]byte("\r\n"))
}

// consoleLog copies every line to the console as well as the base logger.
type consoleLog struct {
	base hal.Logger
	con  *console
}

func (l *consoleLog) WriteLineString(s string) {
	if l.base != nil {
		l.base.WriteLineString(s)
	}
	if l.con != nil {
		l.con.writeLine(s)
	}
}

func (l *consoleLog) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
