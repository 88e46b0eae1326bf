package ember

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, if any, is up to the renderer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, variances, and forces
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mode selects the motion model used to integrate particles.
type Mode uint8

const (
	ModeGravity Mode = iota // launch velocity plus radial, tangential and gravitational acceleration
	ModeRadius              // orbit around the origin with an evolving angle and radius
)

// String returns "gravity" or "radius".
func (m Mode) String() string {
	switch m {
	case ModeGravity:
		return "gravity"
	case ModeRadius:
		return "radius"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of an Engine.
type State uint8

const (
	StateActive  State = iota // spawning permitted, elapsed time advancing
	StateStopped              // no spawning; remaining particles age out
	StatePaused               // active, but births are suppressed
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Sentinel parameter values.
const (
	// DurationInfinity keeps the emitter running forever. Any negative
	// Duration is treated the same way.
	DurationInfinity = -1

	// SizeEqualToStart as EndSize keeps every particle at its birth size.
	SizeEqualToStart = -1

	// RadiusEqualToStart as RadiusMotion.EndRadius keeps the orbit radius
	// constant.
	RadiusEqualToStart = -1
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
