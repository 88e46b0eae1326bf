package ebitenrender

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/ember"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// scrollAnim eases X and Y independently; each axis stops updating once its
// tween reports done.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world space onto a screen viewport: position, zoom and
// rotation. A Renderer with a Camera also skips particles that fall
// outside the visible area.
type Camera struct {
	// X, Y is the world point shown at the viewport center.
	X, Y float64
	// Zoom multiplies world units into pixels.
	Zoom float64
	// Rotation turns the view clockwise, in radians.
	Rotation float64
	// Viewport is where the view lands on the destination image.
	Viewport Rect

	followTarget  *ember.Engine
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled keeps the visible area inside Bounds, for example the
	// playfield an effect is confined to.
	BoundsEnabled bool
	Bounds        Rect

	scrollTween *scrollAnim
}

// NewCamera creates a Camera centered on the origin with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// Follow makes the camera track an emitter's origin with the given offset
// and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following.
func (c *Camera) Follow(e *ember.Engine, offsetX, offsetY, lerp float64) {
	c.followTarget = e
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow leaves the camera where it is.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo eases the view center to (x, y) over duration seconds and ends
// any Follow.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.followTarget = nil
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds confines the visible area to bounds from the next Update.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds lets the camera move freely again.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances following, scrolling and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.followTarget != nil {
		pos := c.followTarget.Position()
		c.X += (pos.X + c.followOffsetX - c.X) * c.followLerp
		c.Y += (pos.Y + c.followOffsetY - c.Y) * c.followLerp
	}

	if s := c.scrollTween; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(dt)
			c.X = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(dt)
			c.Y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds moves X, Y so the visible area sits inside Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds smaller than the visible area center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// GeoM returns the world-to-screen transform:
// Translate(-X, -Y), Rotate(-Rotation), Scale(Zoom), then Translate to the
// viewport center.
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.X, -c.Y)
	if c.Rotation != 0 {
		m.Rotate(-c.Rotation)
	}
	m.Scale(c.Zoom, c.Zoom)
	m.Translate(c.Viewport.X+c.Viewport.Width/2, c.Viewport.Y+c.Viewport.Height/2)
	return m
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	m := c.GeoM()
	return m.Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	m := c.GeoM()
	m.Invert()
	return m.Apply(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	inv := c.GeoM()
	inv.Invert()

	vx, vy := c.Viewport.X, c.Viewport.Y
	vr, vb := vx+c.Viewport.Width, vy+c.Viewport.Height

	x0, y0 := inv.Apply(vx, vy)
	x1, y1 := inv.Apply(vr, vy)
	x2, y2 := inv.Apply(vr, vb)
	x3, y3 := inv.Apply(vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// particleBounds is the world-space square a particle covers, ignoring
// rotation.
func particleBounds(p ember.Particle) Rect {
	pos := p.WorldPosition()
	half := p.Size / 2
	return Rect{X: pos.X - half, Y: pos.Y - half, Width: p.Size, Height: p.Size}
}
