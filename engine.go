package ember

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

// MaxCapacity is the largest pool an Engine will allocate.
const MaxCapacity = 1 << 24

// ErrCapacity is returned when a requested capacity exceeds MaxCapacity.
var ErrCapacity = errors.New("ember: capacity exceeds MaxCapacity")

// pcgStream decorrelates the two PCG words derived from one seed.
const pcgStream = 0x9e3779b97f4a7c15

// particle holds per-particle simulation state shared by both motion models.
// Unexported; managed by Engine.
type particle struct {
	x, y             float64 // position relative to the origin
	originX, originY float64 // emitter position at birth
	life             float64 // remaining lifetime in seconds

	r, g, b, a     float64
	dr, dg, db, da float64 // per-second color deltas

	size, dsize         float64
	rotation, drotation float64 // degrees
}

// gravityState is the gravity-mode motion slot of a particle.
type gravityState struct {
	dirX, dirY      float64
	radialAccel     float64
	tangentialAccel float64
}

// radiusState is the radius-mode motion slot of a particle.
type radiusState struct {
	angle           float64 // radians
	angularVelocity float64 // radians per second
	radius          float64
	radiusDelta     float64
}

// Engine simulates a pool of particles on the CPU. It is not safe for
// concurrent use; give each effect its own Engine.
//
// Live particles occupy indices [0, Count()). A dying particle is replaced
// by the last live one, so index order is not stable across ticks.
type Engine struct {
	config EmitterConfig

	particles []particle
	// Motion slots for the latched mode, parallel to particles. Only one of
	// the two is ever populated.
	gravity []gravityState
	radius  []radiusState
	mode    Mode

	capacity    int
	count       int
	emitCounter float64
	elapsed     float64
	active      bool
	paused      bool

	x, y  float64 // emitter origin
	yFlip float64

	rng    *rand.Rand
	logger *slog.Logger
}

// NewEngine creates an active Engine with an empty configuration. Pass
// WithCapacity to size the pool up front, or call Init or SetStyle later.
// A capacity above MaxCapacity passed to WithCapacity is not an error here:
// the pool stays empty and Capacity reports 0, so check Capacity or call
// Init directly to see ErrCapacity.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Engine{
		rng:    o.rng,
		yFlip:  o.yFlip,
		logger: o.logger,
		active: true,
	}
	if e.logger == nil {
		e.logger = Logger()
	}
	_ = e.Init(o.capacity)
	return e
}

// Init sizes the pool for capacity particles and resets the engine. The
// backing storage only grows: a smaller capacity lowers the limit without
// releasing memory. A negative capacity is treated as zero, so nothing ever
// spawns.
func (e *Engine) Init(capacity int) error {
	if capacity > MaxCapacity {
		e.logger.Warn("ember: capacity rejected", "capacity", capacity, "max", MaxCapacity)
		return fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	if capacity < 0 {
		capacity = 0
	}
	e.capacity = capacity
	e.config.Capacity = capacity
	e.Reset()
	e.logger.Debug("ember: pool initialized", "capacity", capacity, "mode", e.mode)
	return nil
}

// SetStyle replaces the configuration and resets the engine. Every
// in-flight particle is discarded, and the motion model of cfg is latched
// for the particles that follow. On error the previous configuration is
// kept.
func (e *Engine) SetStyle(cfg EmitterConfig) error {
	if cfg.Capacity > MaxCapacity {
		e.logger.Warn("ember: capacity rejected", "capacity", cfg.Capacity, "max", MaxCapacity)
		return fmt.Errorf("%w: %d", ErrCapacity, cfg.Capacity)
	}
	e.config = cfg
	e.logger.Debug("ember: style applied", "mode", cfg.Mode(), "rate", cfg.EmissionRate)
	return e.Init(cfg.Capacity)
}

// Reset kills all particles, zeroes elapsed time and the emission
// accumulator, clears the paused flag and returns the engine to
// StateActive. The configuration is kept; its motion model is latched.
func (e *Engine) Reset() {
	e.active = true
	e.paused = false
	e.elapsed = 0
	e.emitCounter = 0
	e.count = 0
	e.mode = e.config.Mode()
	e.ensurePool()
}

// ensurePool grows the common slots and the latched mode's motion slots to
// the current capacity.
func (e *Engine) ensurePool() {
	n := e.capacity
	if len(e.particles) < n {
		e.particles = make([]particle, n)
	}
	switch e.mode {
	case ModeRadius:
		e.gravity = nil
		if len(e.radius) < len(e.particles) {
			e.radius = make([]radiusState, len(e.particles))
		}
	default:
		e.radius = nil
		if len(e.gravity) < len(e.particles) {
			e.gravity = make([]gravityState, len(e.particles))
		}
	}
}

// Stop disables spawning. Live particles keep aging until they die. Elapsed
// time jumps to the configured duration so the duration check never fires
// again.
func (e *Engine) Stop() {
	e.active = false
	e.elapsed = e.config.Duration
	e.emitCounter = 0
}

// Pause suppresses births without stopping the engine. Elapsed time keeps
// advancing while paused.
func (e *Engine) Pause() {
	e.paused = true
}

// Resume lifts a Pause.
func (e *Engine) Resume() {
	e.paused = false
}

// Seed reseeds the generator used for birth sampling, replacing any
// generator injected with WithRand.
func (e *Engine) Seed(seed uint64) {
	e.rng = rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// State reports the lifecycle state.
func (e *Engine) State() State {
	switch {
	case !e.active:
		return StateStopped
	case e.paused:
		return StatePaused
	default:
		return StateActive
	}
}

// IsActive reports whether the engine has not been stopped. A paused engine
// is still active.
func (e *Engine) IsActive() bool {
	return e.active
}

// IsPaused reports whether births are suppressed.
func (e *Engine) IsPaused() bool {
	return e.paused
}

// IsFull reports whether every pool slot is live.
func (e *Engine) IsFull() bool {
	return e.count == e.capacity
}

// Count returns the number of live particles.
func (e *Engine) Count() int {
	return e.count
}

// Capacity returns the maximum number of simultaneous particles.
func (e *Engine) Capacity() int {
	return e.capacity
}

// Elapsed returns the seconds the emitter has been active since the last
// reset.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Mode returns the motion model latched at the last reset.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Config returns a pointer to the engine's configuration for live tuning
// between ticks. Changes apply to particles born afterwards; deltas of
// live particles are never recomputed. A change of Motion variant takes
// effect on the next Reset.
func (e *Engine) Config() *EmitterConfig {
	return &e.config
}

// SetPosition moves the emitter origin. Live particles keep the origin they
// were born with.
func (e *Engine) SetPosition(x, y float64) {
	e.x = x
	e.y = y
}

// Position returns the emitter origin.
func (e *Engine) Position() Vec2 {
	return Vec2{e.x, e.y}
}

// Tick advances the simulation by dt seconds: it spawns the particles due
// this tick, ages every particle, removes the expired ones and integrates
// the survivors. dt may vary between calls.
func (e *Engine) Tick(dt float64) {
	if e.active && e.config.EmissionRate != 0 {
		e.emit(dt)
	}

	// Age, swap-removing the dead. The particle swapped into slot i has not
	// been aged yet, so i is not advanced.
	i := 0
	for i < e.count {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.remove(i)
			continue
		}
		i++
	}

	if e.mode == ModeRadius {
		e.integrateRadius(dt)
	} else {
		e.integrateGravity(dt)
	}
}

// emit runs the spawn decision and the duration clock for one tick.
func (e *Engine) emit(dt float64) {
	rate := 1 / e.config.EmissionRate

	// Only accumulate while there is room, so freed slots do not trigger a
	// burst.
	if e.count < e.capacity {
		e.emitCounter += dt
		if e.emitCounter < 0 {
			e.emitCounter = 0
		}
	}

	n := int(math.Min(float64(e.capacity-e.count), e.emitCounter/rate))
	if n < 0 {
		n = 0
	}
	if !e.paused {
		e.spawn(n)
	}
	e.emitCounter -= rate * float64(n)

	e.elapsed += dt
	if e.elapsed < 0 {
		e.elapsed = 0
	}
	if d := e.config.Duration; d >= 0 && d < e.elapsed {
		e.logger.Debug("ember: duration reached", "duration", d)
		e.Stop()
	}
}

// remove swaps the last live particle into slot i and shrinks the pool.
func (e *Engine) remove(i int) {
	last := e.count - 1
	e.particles[i] = e.particles[last]
	if e.mode == ModeRadius {
		e.radius[i] = e.radius[last]
	} else {
		e.gravity[i] = e.gravity[last]
	}
	e.count = last
}

// rand11 returns a uniform value in [-1, 1).
func (e *Engine) rand11() float64 {
	return 2*e.rng.Float64() - 1
}

// vary returns base + variance*rand11().
func (e *Engine) vary(base, variance float64) float64 {
	return base + variance*e.rand11()
}

// sampleColor samples each channel independently and clamps it to [0, 1].
func (e *Engine) sampleColor(base, variance Color) Color {
	return Color{
		R: clamp01(e.vary(base.R, variance.R)),
		G: clamp01(e.vary(base.G, variance.G)),
		B: clamp01(e.vary(base.B, variance.B)),
		A: clamp01(e.vary(base.A, variance.A)),
	}
}

// spawn births n particles into the slots following the live ones.
func (e *Engine) spawn(n int) {
	if n <= 0 {
		return
	}
	gm, _ := e.config.Gravity()
	rm, _ := e.config.Radius()
	for ; n > 0; n-- {
		e.birth(e.count, &gm, &rm)
		e.count++
	}
}

// birth samples the initial and end-of-life attributes of slot i.
func (e *Engine) birth(i int, gm *GravityMotion, rm *RadiusMotion) {
	c := &e.config
	p := &e.particles[i]

	p.life = math.Max(0, e.vary(c.Life, c.LifeVariance))
	// A zero-life particle dies this tick; keep its deltas finite.
	var inv float64
	if p.life > 0 {
		inv = 1 / p.life
	}

	p.x = e.vary(c.SourcePosition.X, c.PositionVariance.X)
	p.y = e.vary(c.SourcePosition.Y, c.PositionVariance.Y)
	p.originX = e.x
	p.originY = e.y

	start := e.sampleColor(c.StartColor, c.StartColorVariance)
	end := e.sampleColor(c.EndColor, c.EndColorVariance)
	p.r, p.g, p.b, p.a = start.R, start.G, start.B, start.A
	p.dr = (end.R - start.R) * inv
	p.dg = (end.G - start.G) * inv
	p.db = (end.B - start.B) * inv
	p.da = (end.A - start.A) * inv

	p.size = math.Max(0, e.vary(c.StartSize, c.StartSizeVariance))
	if c.EndSize != SizeEqualToStart {
		endSize := math.Max(0, e.vary(c.EndSize, c.EndSizeVariance))
		p.dsize = (endSize - p.size) * inv
	} else {
		p.dsize = 0
	}

	p.rotation = e.vary(c.StartSpin, c.StartSpinVariance)
	endSpin := e.vary(c.EndSpin, c.EndSpinVariance)
	p.drotation = (endSpin - p.rotation) * inv

	if e.mode == ModeRadius {
		s := &e.radius[i]
		s.radius = e.vary(rm.StartRadius, rm.StartRadiusVariance)
		s.angle = e.vary(c.Angle, c.AngleVariance) * degToRad
		s.angularVelocity = e.vary(rm.RotatePerSecond, rm.RotatePerSecondVariance) * degToRad
		if rm.EndRadius == RadiusEqualToStart {
			s.radiusDelta = 0
		} else {
			endRadius := e.vary(rm.EndRadius, rm.EndRadiusVariance)
			s.radiusDelta = (endRadius - s.radius) * inv
		}
		return
	}

	s := &e.gravity[i]
	s.radialAccel = e.vary(gm.RadialAccel, gm.RadialAccelVariance)
	s.tangentialAccel = e.vary(gm.TangentialAccel, gm.TangentialAccelVariance)
	a := e.vary(c.Angle, c.AngleVariance) * degToRad
	speed := e.vary(gm.Speed, gm.SpeedVariance)
	s.dirX = math.Cos(a) * speed
	s.dirY = math.Sin(a) * speed
	if gm.RotationIsDir {
		p.rotation = -math.Atan2(s.dirY, s.dirX) * radToDeg
	}
}

// integrateGravity moves every live particle under gravity-mode forces.
func (e *Engine) integrateGravity(dt float64) {
	gm, _ := e.config.Gravity()
	gx, gy := gm.Gravity.X, gm.Gravity.Y
	for i := 0; i < e.count; i++ {
		p := &e.particles[i]
		s := &e.gravity[i]

		// Radial unit vector; zero at the origin so no force applies.
		var rx, ry float64
		if p.x != 0 || p.y != 0 {
			rx, ry = normalize(p.x, p.y)
		}
		tx := -ry * s.tangentialAccel
		ty := rx * s.tangentialAccel
		rx *= s.radialAccel
		ry *= s.radialAccel

		s.dirX += (rx + tx + gx) * dt
		s.dirY += (ry + ty + gy) * dt
		p.x += s.dirX * dt * e.yFlip
		p.y += s.dirY * dt * e.yFlip

		p.advance(dt)
	}
}

// integrateRadius moves every live particle along its orbit.
func (e *Engine) integrateRadius(dt float64) {
	for i := 0; i < e.count; i++ {
		p := &e.particles[i]
		s := &e.radius[i]

		s.angle += s.angularVelocity * dt
		s.radius += s.radiusDelta * dt
		p.x = -math.Cos(s.angle) * s.radius
		p.y = -math.Sin(s.angle) * s.radius * e.yFlip

		p.advance(dt)
	}
}

// advance applies the per-second color, size and rotation deltas.
func (p *particle) advance(dt float64) {
	p.r += p.dr * dt
	p.g += p.dg * dt
	p.b += p.db * dt
	p.a += p.da * dt
	p.size = math.Max(0, p.size+p.dsize*dt)
	p.rotation += p.drotation * dt
}

// normalize returns (x, y) scaled to unit length, or zero when the vector is
// too short to have a direction.
func normalize(x, y float64) (float64, float64) {
	n := x*x + y*y
	if n == 1 {
		return x, y
	}
	n = math.Sqrt(n)
	if n < 1e-5 {
		return 0, 0
	}
	return x / n, y / n
}
