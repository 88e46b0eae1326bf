package termrender

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/ember"
)

type fakeSource []ember.Particle

func (s fakeSource) Count() int                      { return len(s) }
func (s fakeSource) ParticleAt(i int) ember.Particle { return s[i] }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawLightsCell(t *testing.T) {
	screen := newScreen(t, 20, 10)
	var r Renderer
	r.Draw(screen, fakeSource{{
		Position: ember.Vec2{X: 1.5, Y: 0.2},
		Origin:   ember.Vec2{X: 4, Y: 3},
		Size:     1,
		Color:    ember.Color{R: 1, G: 0.5, B: 0, A: 1},
	}})
	screen.Show()

	mainc, _, style, _ := screen.GetContent(5, 3)
	if mainc != '@' {
		t.Errorf("glyph = %q, want '@'", mainc)
	}
	fg, _, _ := style.Decompose()
	if want := tcell.NewRGBColor(255, 128, 0); fg != want {
		t.Errorf("fg = %v, want %v", fg, want)
	}
}

func TestDrawBrightestWins(t *testing.T) {
	screen := newScreen(t, 10, 10)
	var r Renderer
	r.Draw(screen, fakeSource{
		{Position: ember.Vec2{X: 2, Y: 2}, Size: 1, Color: ember.Color{R: 1, G: 1, B: 1, A: 0.9}},
		{Position: ember.Vec2{X: 2.4, Y: 2.4}, Size: 1, Color: ember.Color{R: 1, G: 1, B: 1, A: 0.1}},
	})
	screen.Show()

	mainc, _, _, _ := screen.GetContent(2, 2)
	if mainc != '@' {
		t.Errorf("glyph = %q, want the brighter particle's '@'", mainc)
	}
}

func TestDrawSkipsInvisibleAndOffscreen(t *testing.T) {
	screen := newScreen(t, 10, 10)
	var r Renderer
	r.Draw(screen, fakeSource{
		{Position: ember.Vec2{X: 1, Y: 1}, Size: 0, Color: ember.ColorWhite},
		{Position: ember.Vec2{X: 2, Y: 2}, Size: 1, Color: ember.Color{R: 1, G: 1, B: 1}},
		{Position: ember.Vec2{X: -1, Y: 3}, Size: 1, Color: ember.ColorWhite},
		{Position: ember.Vec2{X: 3, Y: 10}, Size: 1, Color: ember.ColorWhite},
	})
	screen.Show()

	for _, c := range [][2]int{{1, 1}, {2, 2}} {
		if mainc, _, _, _ := screen.GetContent(c[0], c[1]); mainc != ' ' {
			t.Errorf("cell %v = %q, want blank", c, mainc)
		}
	}
}

func TestGlyphRamp(t *testing.T) {
	screen := newScreen(t, 10, 1)
	r := Renderer{Glyphs: []rune{'a', 'b'}}
	r.Draw(screen, fakeSource{
		{Position: ember.Vec2{X: 0}, Size: 1, Color: ember.Color{R: 1, G: 1, B: 1, A: 0.2}},
		{Position: ember.Vec2{X: 1}, Size: 1, Color: ember.Color{R: 1, G: 1, B: 1, A: 0.8}},
	})
	screen.Show()

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != 'a' {
		t.Errorf("faint glyph = %q, want 'a'", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(1, 0); mainc != 'b' {
		t.Errorf("bright glyph = %q, want 'b'", mainc)
	}
}

func TestCellMapping(t *testing.T) {
	r := Renderer{CellW: 8, CellH: 16, Offset: ember.Vec2{X: 100, Y: 0}}
	tests := []struct {
		pos          ember.Vec2
		wantX, wantY int
		wantOK       bool
	}{
		{ember.Vec2{X: 100, Y: 0}, 0, 0, true},
		{ember.Vec2{X: 124, Y: 40}, 3, 2, true},
		{ember.Vec2{X: 99, Y: 0}, 0, 0, false},
		{ember.Vec2{X: 100 + 8*80, Y: 0}, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := r.Cell(tt.pos, 80, 24)
		if ok != tt.wantOK || (ok && (x != tt.wantX || y != tt.wantY)) {
			t.Errorf("Cell(%v) = %d, %d, %v, want %d, %d, %v", tt.pos, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
		}
	}
}

func TestDrawFromEngine(t *testing.T) {
	screen := newScreen(t, 80, 24)
	e := ember.NewEngine(ember.WithSeed(8))
	if err := e.ApplyPreset(ember.PresetFirework); err != nil {
		t.Fatal(err)
	}
	r := Renderer{CellW: 8, CellH: 16}
	e.SetPosition(320, 380)
	for range 50 {
		e.Tick(1.0 / 25)
	}
	r.Draw(screen, e)
	screen.Show()

	lit := 0
	for y := range 24 {
		for x := range 80 {
			if mainc, _, _, _ := screen.GetContent(x, y); mainc != ' ' {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no cells lit by a running firework")
	}
}
