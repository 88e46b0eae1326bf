package ember

import "iter"

// Particle is a read-only snapshot of one live particle, the attributes a
// renderer needs to draw it.
type Particle struct {
	// Position is relative to Origin.
	Position Vec2
	// Origin is the emitter position when the particle was born.
	Origin Vec2
	// Size is the particle's edge length in world units, never negative.
	Size float64
	// Rotation is in degrees.
	Rotation float64
	// Color is the current tint including alpha.
	Color Color
	// Life is the remaining lifetime in seconds, always positive.
	Life float64
}

// WorldPosition returns Position + Origin.
func (p Particle) WorldPosition() Vec2 {
	return p.Position.Add(p.Origin)
}

// Source is the view of a particle pool that renderers consume each frame.
// Snapshots are valid until the next Tick or Reset.
type Source interface {
	Count() int
	ParticleAt(i int) Particle
}

var _ Source = (*Engine)(nil)

// ParticleAt returns the snapshot of live particle i. It returns the zero
// Particle when i is outside [0, Count()).
func (e *Engine) ParticleAt(i int) Particle {
	if i < 0 || i >= e.count {
		return Particle{}
	}
	p := &e.particles[i]
	return Particle{
		Position: Vec2{p.x, p.y},
		Origin:   Vec2{p.originX, p.originY},
		Size:     p.size,
		Rotation: p.rotation,
		Color:    Color{p.r, p.g, p.b, p.a},
		Life:     p.life,
	}
}

// All iterates over the live particles in pool order.
//
//	for i, p := range e.All() {
//		draw(i, p.WorldPosition(), p.Size)
//	}
func (e *Engine) All() iter.Seq2[int, Particle] {
	return func(yield func(int, Particle) bool) {
		for i := 0; i < e.count; i++ {
			if !yield(i, e.ParticleAt(i)) {
				return
			}
		}
	}
}
