package ember

import (
	"fmt"
	"strings"
)

// Preset names a ready-made effect style.
type Preset uint8

const (
	PresetNone Preset = iota // no effect; applying it stops the engine
	PresetSnow
	PresetFire
	PresetFirework
	PresetExplosion
	PresetSmoke
	PresetGalaxy
	PresetRain
	PresetMeteor
	PresetFlower
	PresetVortex
)

var presetNames = [...]string{
	PresetNone:      "none",
	PresetSnow:      "snow",
	PresetFire:      "fire",
	PresetFirework:  "firework",
	PresetExplosion: "explosion",
	PresetSmoke:     "smoke",
	PresetGalaxy:    "galaxy",
	PresetRain:      "rain",
	PresetMeteor:    "meteor",
	PresetFlower:    "flower",
	PresetVortex:    "vortex",
}

// String returns the preset's lower-case name.
func (p Preset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("Preset(%d)", uint8(p))
}

// ParsePreset looks a preset up by name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	for i, n := range presetNames {
		if strings.EqualFold(n, name) {
			return Preset(i), nil
		}
	}
	return PresetNone, fmt.Errorf("ember: unknown preset %q", name)
}

// Presets returns every preset that produces particles, in declaration order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetNames)-1)
	for i := 1; i < len(presetNames); i++ {
		out = append(out, Preset(i))
	}
	return out
}

// ApplyPreset installs the preset's configuration with SetStyle. PresetNone
// keeps the current configuration, resets the engine and stops it.
func (e *Engine) ApplyPreset(p Preset) error {
	if p == PresetNone {
		e.Reset()
		e.Stop()
		return nil
	}
	return e.SetStyle(p.Config())
}

// Config returns the preset's emitter configuration. Angles follow a Y-down
// screen convention: 90 degrees launches along +Y, and the negative speeds
// of the upward styles flip that to -Y.
func (p Preset) Config() EmitterConfig {
	switch p {
	case PresetSnow:
		return EmitterConfig{
			Capacity:      700,
			EmissionRate:  10,
			Duration:      DurationInfinity,
			Life:          15,
			Angle:         -90,
			AngleVariance: 5,
			Motion: GravityMotion{
				Gravity:                 Vec2{0, 1},
				Speed:                   -5,
				SpeedVariance:           1,
				RadialAccelVariance:     1,
				TangentialAccelVariance: 1,
			},
			PositionVariance:  Vec2{300, 0},
			StartSize:         20,
			StartSizeVariance: 5,
			EndSize:           SizeEqualToStart,
			StartColor:        Color{1, 1, 1, 1},
			EndColor:          Color{1, 1, 1, 0},
		}
	case PresetFire:
		return EmitterConfig{
			Capacity:      250,
			EmissionRate:  250 / 3.0,
			Duration:      DurationInfinity,
			Life:          3,
			LifeVariance:  0.25,
			Angle:         90,
			AngleVariance: 10,
			Motion: GravityMotion{
				Speed:         -60,
				SpeedVariance: 20,
			},
			PositionVariance:  Vec2{40, 20},
			StartSize:         54,
			StartSizeVariance: 10,
			EndSize:           SizeEqualToStart,
			StartColor:        Color{0.76, 0.25, 0.12, 1},
			EndColor:          Color{0, 0, 0, 0},
		}
	case PresetFirework:
		return EmitterConfig{
			Capacity:      1500,
			EmissionRate:  1500 / 3.5,
			Duration:      DurationInfinity,
			Life:          3.5,
			LifeVariance:  1,
			Angle:         90,
			AngleVariance: 20,
			Motion: GravityMotion{
				Gravity:       Vec2{0, 90},
				Speed:         -180,
				SpeedVariance: 50,
			},
			StartSize:          8,
			StartSizeVariance:  2,
			EndSize:            SizeEqualToStart,
			StartColor:         Color{0.5, 0.5, 0.5, 1},
			StartColorVariance: Color{0.5, 0.5, 0.5, 0.1},
			EndColor:           Color{0.1, 0.1, 0.1, 0.2},
			EndColorVariance:   Color{0.1, 0.1, 0.1, 0.2},
		}
	case PresetExplosion:
		return EmitterConfig{
			Capacity:      700,
			EmissionRate:  700 / 0.1,
			Duration:      0.1,
			Life:          5,
			LifeVariance:  2,
			Angle:         90,
			AngleVariance: 360,
			Motion: GravityMotion{
				Speed:         -70,
				SpeedVariance: 40,
			},
			StartSize:          15,
			StartSizeVariance:  10,
			EndSize:            SizeEqualToStart,
			StartColor:         Color{0.7, 0.1, 0.2, 1},
			StartColorVariance: Color{0.5, 0.5, 0.5, 0},
			EndColor:           Color{0.5, 0.5, 0.5, 0},
			EndColorVariance:   Color{0.5, 0.5, 0.5, 0},
		}
	case PresetSmoke:
		return EmitterConfig{
			Capacity:      200,
			EmissionRate:  200 / 4.0,
			Duration:      DurationInfinity,
			Life:          4,
			LifeVariance:  1,
			Angle:         90,
			AngleVariance: 5,
			Motion: GravityMotion{
				Speed:         -25,
				SpeedVariance: 10,
			},
			PositionVariance:   Vec2{20, 0},
			StartSize:          60,
			StartSizeVariance:  10,
			EndSize:            SizeEqualToStart,
			StartColor:         Color{0.8, 0.8, 0.8, 1},
			StartColorVariance: Color{0.02, 0.02, 0.02, 0},
			EndColor:           Color{0, 0, 0, 1},
		}
	case PresetGalaxy:
		return EmitterConfig{
			Capacity:      200,
			EmissionRate:  200 / 4.0,
			Duration:      DurationInfinity,
			Life:          4,
			LifeVariance:  1,
			Angle:         90,
			AngleVariance: 360,
			Motion: GravityMotion{
				Speed:           -60,
				SpeedVariance:   10,
				RadialAccel:     -80,
				TangentialAccel: 80,
			},
			StartSize:         37,
			StartSizeVariance: 10,
			EndSize:           SizeEqualToStart,
			StartColor:        Color{0.12, 0.25, 0.76, 1},
			EndColor:          Color{0, 0, 0, 1},
		}
	case PresetRain:
		return EmitterConfig{
			Capacity:      1000,
			EmissionRate:  20,
			Duration:      DurationInfinity,
			Life:          4.5,
			Angle:         -90,
			AngleVariance: 5,
			Motion: GravityMotion{
				Gravity:                 Vec2{10, 10},
				Speed:                   -130,
				SpeedVariance:           30,
				RadialAccelVariance:     1,
				TangentialAccelVariance: 1,
			},
			PositionVariance:  Vec2{400, 0},
			StartSize:         4,
			StartSizeVariance: 2,
			EndSize:           SizeEqualToStart,
			StartColor:        Color{0.7, 0.8, 1, 1},
			EndColor:          Color{0.7, 0.8, 1, 0.5},
		}
	case PresetMeteor:
		return EmitterConfig{
			Capacity:      150,
			EmissionRate:  150 / 2.0,
			Duration:      DurationInfinity,
			Life:          2,
			LifeVariance:  1,
			Angle:         90,
			AngleVariance: 360,
			Motion: GravityMotion{
				Gravity:       Vec2{-200, -200},
				Speed:         -15,
				SpeedVariance: 5,
			},
			StartSize:          60,
			StartSizeVariance:  10,
			EndSize:            SizeEqualToStart,
			StartColor:         Color{0.8, 0.4, 0.3, 1},
			StartColorVariance: Color{0.2, 0, 0.2, 0.1},
			EndColor:           Color{0.1, 0, 0, 1},
		}
	case PresetFlower:
		return EmitterConfig{
			Capacity:      250,
			EmissionRate:  250 / 4.0,
			Duration:      DurationInfinity,
			Life:          4,
			LifeVariance:  1,
			Angle:         90,
			AngleVariance: 360,
			Motion: GravityMotion{
				Speed:           -80,
				SpeedVariance:   10,
				RadialAccel:     -60,
				TangentialAccel: 15,
			},
			StartSize:          30,
			StartSizeVariance:  10,
			EndSize:            SizeEqualToStart,
			StartColor:         Color{0.5, 0.5, 0.5, 1},
			StartColorVariance: Color{0.5, 0.5, 0.5, 0.5},
			EndColor:           Color{0.1, 0, 0, 1},
		}
	case PresetVortex:
		// Particles spiral inward from a ring while fading out.
		return EmitterConfig{
			Capacity:      300,
			EmissionRate:  300 / 3.0,
			Duration:      DurationInfinity,
			Life:          3,
			LifeVariance:  0.5,
			AngleVariance: 180,
			Motion: RadiusMotion{
				StartRadius:             140,
				StartRadiusVariance:     20,
				EndRadius:               0,
				RotatePerSecond:         120,
				RotatePerSecondVariance: 30,
			},
			StartSize:          24,
			StartSizeVariance:  6,
			EndSize:            4,
			StartColor:         Color{0.55, 0.3, 0.9, 1},
			StartColorVariance: Color{0.1, 0.1, 0.1, 0},
			EndColor:           Color{0.2, 0.8, 1, 0},
			EndSpin:            360,
		}
	default:
		return EmitterConfig{Duration: DurationInfinity}
	}
}
