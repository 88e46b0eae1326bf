// Package ggrender rasterizes ember particle snapshots with the gogpu/gg
// software renderer, for headless captures and PNG frame dumps.
package ggrender

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"

	"github.com/phanxgames/ember"
)

// Shape is the outline drawn for each particle.
type Shape uint8

const (
	ShapeCircle  Shape = iota // disc of diameter Size
	ShapeSquare               // Size×Size square turned by the particle rotation
	ShapeHexagon              // hexagon with circumradius Size/2, turned by the particle rotation
)

var shapeNames = [...]string{
	ShapeCircle:  "circle",
	ShapeSquare:  "square",
	ShapeHexagon: "hexagon",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape looks a shape up by name.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return ShapeCircle, fmt.Errorf("ggrender: unknown shape %q", name)
}

// Draw fills one shape per visible particle of src on dc, in pool order.
// Particles with no size or no alpha are skipped.
func Draw(dc *gg.Context, src ember.Source, shape Shape) error {
	for i := range src.Count() {
		p := src.ParticleAt(i)
		if p.Size <= 0 || p.Color.A <= 0 {
			continue
		}
		pos := p.WorldPosition()
		half := p.Size / 2
		rot := p.Rotation * math.Pi / 180

		dc.SetRGBA(p.Color.R, p.Color.G, p.Color.B, p.Color.A)
		switch shape {
		case ShapeSquare:
			dc.Push()
			dc.RotateAbout(rot, pos.X, pos.Y)
			dc.DrawRectangle(pos.X-half, pos.Y-half, p.Size, p.Size)
			dc.Pop()
		case ShapeHexagon:
			dc.DrawRegularPolygon(6, pos.X, pos.Y, half, rot)
		default:
			dc.DrawCircle(pos.X, pos.Y, half)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("ggrender: fill particle %d: %w", i, err)
		}
	}
	return nil
}

// Frame describes a PNG capture.
type Frame struct {
	Width, Height int
	Background    ember.Color
	Shape         Shape
}

// WriteFrame renders src into a new w×h image and saves it as
// dir/<label>.png, creating dir if needed. It returns the written path.
func WriteFrame(dir, label string, f Frame, src ember.Source) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ggrender: mkdir %s: %w", dir, err)
	}

	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	bg := f.Background
	dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})
	if err := Draw(dc, src, f.Shape); err != nil {
		return "", err
	}

	path := filepath.Join(dir, SanitizeLabel(label)+".png")
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("ggrender: save %s: %w", path, err)
	}
	return path, nil
}

// SanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
