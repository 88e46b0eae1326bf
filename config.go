package ember

// Motion holds the parameters of one motion model. It is implemented by
// GravityMotion and RadiusMotion only.
type Motion interface {
	Mode() Mode
	isMotion()
}

// GravityMotion configures gravity-mode integration: each particle is
// launched along Angle±AngleVariance at Speed±SpeedVariance and is then
// accelerated by gravity plus radial and tangential components.
type GravityMotion struct {
	// Gravity is the constant acceleration applied to every particle.
	Gravity Vec2
	// Speed is the launch speed in units per second.
	Speed         float64
	SpeedVariance float64
	// RadialAccel accelerates particles away from the origin (negative
	// values pull them in).
	RadialAccel         float64
	RadialAccelVariance float64
	// TangentialAccel accelerates particles perpendicular to the radial
	// direction.
	TangentialAccel         float64
	TangentialAccelVariance float64
	// RotationIsDir aligns each particle's rotation with its launch
	// direction.
	RotationIsDir bool
}

// Mode returns ModeGravity.
func (GravityMotion) Mode() Mode { return ModeGravity }
func (GravityMotion) isMotion()  {}

// RadiusMotion configures radius-mode integration: each particle orbits the
// origin starting at StartRadius and Angle, rotating RotatePerSecond degrees
// per second while its radius moves linearly toward EndRadius.
type RadiusMotion struct {
	StartRadius         float64
	StartRadiusVariance float64
	// EndRadius is the radius at death, or RadiusEqualToStart.
	EndRadius               float64
	EndRadiusVariance       float64
	RotatePerSecond         float64
	RotatePerSecondVariance float64
}

// Mode returns ModeRadius.
func (RadiusMotion) Mode() Mode { return ModeRadius }
func (RadiusMotion) isMotion()  {}

// EmitterConfig controls how particles are spawned and behave. Every
// XxxVariance field widens the matching value to Xxx±XxxVariance, sampled
// uniformly per particle at birth.
//
// No field is validated. Out-of-range values give degenerate but defined
// behavior: a non-positive Capacity never spawns, a negative Life yields
// particles that die in the tick they are born, and colors outside [0, 1]
// are clamped when sampled.
type EmitterConfig struct {
	// Capacity is the maximum number of simultaneous particles.
	Capacity int
	// EmissionRate is the number of particles spawned per second. Zero
	// disables spawning.
	EmissionRate float64
	// Duration is how long the emitter stays active in seconds, or
	// DurationInfinity.
	Duration float64

	// Life is the particle lifespan in seconds.
	Life         float64
	LifeVariance float64

	// SourcePosition offsets spawn points from the emitter position.
	SourcePosition   Vec2
	PositionVariance Vec2

	// Angle is the launch direction (gravity mode) or the starting orbit
	// angle (radius mode), in degrees.
	Angle         float64
	AngleVariance float64

	// Motion selects and parameterizes the motion model. A nil Motion is a
	// zero GravityMotion.
	Motion Motion

	// StartSize is the particle size at birth. EndSize is the size at death,
	// or SizeEqualToStart.
	StartSize         float64
	StartSizeVariance float64
	EndSize           float64
	EndSizeVariance   float64

	StartColor         Color
	StartColorVariance Color
	EndColor           Color
	EndColorVariance   Color

	// StartSpin and EndSpin are the rotation at birth and at death, in
	// degrees.
	StartSpin         float64
	StartSpinVariance float64
	EndSpin           float64
	EndSpinVariance   float64
}

// Mode reports the motion model selected by c.Motion.
func (c EmitterConfig) Mode() Mode {
	if c.Motion == nil {
		return ModeGravity
	}
	return c.Motion.Mode()
}

// SetMode switches the motion model. The current Motion is kept when it
// already matches m; otherwise it is replaced by the zero value of the
// requested model. SetMode never touches an engine's pool: the new model
// takes effect on the engine's next Reset.
func (c *EmitterConfig) SetMode(m Mode) {
	if c.Motion != nil && c.Motion.Mode() == m {
		return
	}
	switch m {
	case ModeRadius:
		c.Motion = RadiusMotion{}
	default:
		c.Motion = GravityMotion{}
	}
}

// Gravity returns the gravity-mode parameters and whether they are the
// active model.
func (c EmitterConfig) Gravity() (GravityMotion, bool) {
	switch m := c.Motion.(type) {
	case nil:
		return GravityMotion{}, true
	case GravityMotion:
		return m, true
	case *GravityMotion:
		return *m, true
	}
	return GravityMotion{}, false
}

// Radius returns the radius-mode parameters and whether they are the active
// model.
func (c EmitterConfig) Radius() (RadiusMotion, bool) {
	switch m := c.Motion.(type) {
	case RadiusMotion:
		return m, true
	case *RadiusMotion:
		return *m, true
	}
	return RadiusMotion{}, false
}
