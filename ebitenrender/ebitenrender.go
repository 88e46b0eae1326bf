// Package ebitenrender draws ember particle snapshots with [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
package ebitenrender

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/ember"
)

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	default:
		return ebiten.BlendSourceOver
	}
}

// Renderer draws every live particle of a source as a textured quad. The
// quad is centered on the particle, scaled so the image is Size units wide
// and high, rotated by the particle's Rotation (degrees, clockwise on a
// Y-down screen) and tinted with its color.
//
// A zero Renderer is usable: it draws a soft white dot with normal blending.
type Renderer struct {
	// Image is the particle texture. Nil selects a shared soft dot.
	Image *ebiten.Image
	Blend BlendMode
	// GeoM is applied after each particle's own transform.
	GeoM ebiten.GeoM
	// Camera, when set, is applied after GeoM and culls particles outside
	// its visible bounds. Culling assumes GeoM keeps particles in world
	// space.
	Camera *Camera

	op ebiten.DrawImageOptions
}

// Draw renders the particles of src onto dst. Particles with no size or no
// alpha are skipped.
func (r *Renderer) Draw(dst *ebiten.Image, src ember.Source) {
	img := r.Image
	if img == nil {
		img = defaultDot()
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	blend := r.Blend.EbitenBlend()

	view := r.GeoM
	var cull Rect
	if r.Camera != nil {
		view.Concat(r.Camera.GeoM())
		cull = r.Camera.VisibleBounds()
	}

	for i := range src.Count() {
		p := src.ParticleAt(i)
		if !visible(p) {
			continue
		}
		if r.Camera != nil && !particleBounds(p).Intersects(cull) {
			continue
		}
		r.op.GeoM = particleGeoM(p, w, h)
		r.op.GeoM.Concat(view)

		r.op.ColorScale.Reset()
		a := float32(p.Color.A)
		r.op.ColorScale.Scale(float32(p.Color.R)*a, float32(p.Color.G)*a, float32(p.Color.B)*a, a)
		r.op.Blend = blend

		dst.DrawImage(img, &r.op)
	}
}

func visible(p ember.Particle) bool {
	return p.Size > 0 && p.Color.A > 0
}

// particleGeoM maps a w×h image onto the particle's quad.
func particleGeoM(p ember.Particle, w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-w/2, -h/2)
	m.Scale(p.Size/w, p.Size/h)
	if p.Rotation != 0 {
		m.Rotate(p.Rotation * math.Pi / 180)
	}
	pos := p.WorldPosition()
	m.Translate(pos.X, pos.Y)
	return m
}

var (
	dotOnce sync.Once
	dot     *ebiten.Image
)

// defaultDot is created on first use so importing the package never touches
// the graphics driver.
func defaultDot() *ebiten.Image {
	dotOnce.Do(func() {
		dot = ebiten.NewImageFromImage(SoftDot(32))
	})
	return dot
}

// SoftDot returns a size×size white disc whose alpha falls off
// quadratically from the center, a general purpose particle texture.
func SoftDot(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			dx := (float64(x) + 0.5 - c) / c
			dy := (float64(y) + 0.5 - c) / c
			d := 1 - (dx*dx + dy*dy)
			if d <= 0 {
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, uint8(d * d * 255)})
		}
	}
	return img
}
