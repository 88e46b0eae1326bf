// Package termrender draws ember particle snapshots on a terminal through
// tcell. Each particle lights the cell under its world position with a
// glyph chosen by its alpha and a true-color foreground.
package termrender

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/ember"
)

// DefaultGlyphs is the brightness ramp used when Renderer.Glyphs is empty,
// from faint to solid.
var DefaultGlyphs = []rune{'.', ':', '+', '*', '#', '@'}

// Renderer maps world units onto terminal cells. A zero Renderer treats one
// world unit as one cell.
type Renderer struct {
	// CellW and CellH are the world units covered by one cell. Terminal
	// cells are roughly twice as tall as wide, so CellH = 2*CellW keeps
	// circles round.
	CellW, CellH float64
	// Offset is subtracted from world positions before mapping.
	Offset ember.Vec2
	Glyphs []rune
	// Style supplies the background and attributes; the foreground is
	// replaced per particle.
	Style tcell.Style

	best []float64
}

// Draw lights one cell per visible particle. When several particles share a
// cell the brightest one wins. Draw does not clear or show the screen.
func (r *Renderer) Draw(screen tcell.Screen, src ember.Source) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if cap(r.best) < w*h {
		r.best = make([]float64, w*h)
	}
	r.best = r.best[:w*h]
	clear(r.best)

	glyphs := r.Glyphs
	if len(glyphs) == 0 {
		glyphs = DefaultGlyphs
	}

	for i := range src.Count() {
		p := src.ParticleAt(i)
		if p.Size <= 0 || p.Color.A <= 0 {
			continue
		}
		x, y, ok := r.Cell(p.WorldPosition(), w, h)
		if !ok {
			continue
		}
		level := intensity(p.Color)
		idx := y*w + x
		if level <= r.best[idx] {
			continue
		}
		r.best[idx] = level

		g := glyphs[min(int(level*float64(len(glyphs))), len(glyphs)-1)]
		fg := tcell.NewRGBColor(channel(p.Color.R), channel(p.Color.G), channel(p.Color.B))
		screen.SetContent(x, y, g, nil, r.Style.Foreground(fg))
	}
}

// Cell returns the cell under world position pos on a w×h screen, and
// whether it is on screen.
func (r *Renderer) Cell(pos ember.Vec2, w, h int) (x, y int, ok bool) {
	cw, ch := r.CellW, r.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	fx := math.Floor((pos.X - r.Offset.X) / cw)
	fy := math.Floor((pos.Y - r.Offset.Y) / ch)
	if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// intensity is the particle's alpha weighted by its brightest channel.
func intensity(c ember.Color) float64 {
	return c.A * max(c.R, c.G, c.B)
}

func channel(v float64) int32 {
	return int32(math.Round(max(0, min(1, v)) * 255))
}
