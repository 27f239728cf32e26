package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/finchterm/vtscreen"
)

// namedColorHex mirrors the vtscreen package's own 16-color head table
// (pyte's literal xterm values) so the demo renders named tokens with the
// exact hue the core resolver assigned them, without vtscreen exporting its
// internal palette.
var namedColorHex = map[string]string{
	"black": "000000", "red": "cd0000", "green": "00cd00", "brown": "cdcd00",
	"blue": "0000ee", "magenta": "cd00cd", "cyan": "00cdcd", "white": "e5e5e5",
	"brightblack": "7f7f7f", "brightred": "ff0000", "brightgreen": "00ff00", "brightbrown": "ffff00",
	"brightblue": "5c5cff", "brightmagenta": "ff00ff", "brightcyan": "00ffff", "brightwhite": "ffffff",
}

// resolveColor returns the hex color for a cell's Foreground/Background
// token and whether it should be applied at all — "default" with no
// reverse video means "leave the terminal's own default alone".
func resolveColor(token string, reverse, isForeground bool) (lipgloss.Color, bool) {
	if token == "default" || token == "" {
		if !reverse {
			return "", false
		}
		if isForeground {
			return lipgloss.Color("#000000"), true
		}
		return lipgloss.Color("#e5e5e5"), true
	}
	if hex, ok := namedColorHex[token]; ok {
		return lipgloss.Color("#" + hex), true
	}
	return lipgloss.Color("#" + token), true
}

func styleFor(c vtscreen.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := resolveColor(c.Foreground, c.Reverse, true); ok {
		style = style.Foreground(fg)
	}
	if bg, ok := resolveColor(c.Background, c.Reverse, false); ok {
		style = style.Background(bg)
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Italics {
		style = style.Italic(true)
	}
	if c.Underscore {
		style = style.Underline(true)
	}
	if c.Strikethrough {
		style = style.Strikethrough(true)
	}
	if c.Blink {
		style = style.Blink(true)
	}
	return style
}

// Renderer draws a vtscreen.Screen's dirty lines to an *os.File, batching
// the whole frame into one write the way the teacher's Renderer batches
// into a strings.Builder before a single flush.
type Renderer struct {
	screen *vtscreen.HistoryScreen
	out    *os.File

	mu           sync.Mutex
	renderNeeded bool
	stop         chan struct{}
}

func newRenderer(screen *vtscreen.HistoryScreen, out *os.File) *Renderer {
	return &Renderer{
		screen:       screen,
		out:          out,
		renderNeeded: true,
		stop:         make(chan struct{}),
	}
}

func (r *Renderer) requestRender() {
	r.mu.Lock()
	r.renderNeeded = true
	r.mu.Unlock()
}

// loop renders at up to 60fps, but only when something is dirty.
func (r *Renderer) loop() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.mu.Lock()
			needed := r.renderNeeded
			r.renderNeeded = false
			r.mu.Unlock()
			if needed {
				r.render()
			}
		case <-r.stop:
			return
		}
	}
}

func (r *Renderer) close() {
	close(r.stop)
}

func (r *Renderer) render() {
	dirty := r.screen.Dirty()
	if len(dirty) == 0 {
		return
	}

	var out strings.Builder
	out.WriteString("\x1b[?25l")

	columns := r.screen.Columns()
	for _, y := range dirty {
		out.WriteString(fmt.Sprintf("\x1b[%d;1H\x1b[2K", y+1))
		var run strings.Builder
		var runAttrs vtscreen.Cell
		haveRun := false
		flush := func() {
			if haveRun && run.Len() > 0 {
				out.WriteString(styleFor(runAttrs).Render(run.String()))
			}
			run.Reset()
			haveRun = false
		}
		for x := 0; x < columns; x++ {
			c := r.screen.CellAt(y, x)
			if c.Data == "" {
				continue
			}
			attrs := c
			attrs.Data = ""
			if !haveRun {
				runAttrs, haveRun = attrs, true
			} else if attrs != runAttrs {
				flush()
				runAttrs, haveRun = attrs, true
			}
			run.WriteString(c.Data)
		}
		flush()
	}
	r.screen.ClearDirty()

	cursor := r.screen.GetCursor()
	if !cursor.Hidden {
		out.WriteString(fmt.Sprintf("\x1b[%d;%dH\x1b[?25h", cursor.Y+1, min(cursor.X+1, columns)))
	}

	r.out.WriteString(out.String())
}
