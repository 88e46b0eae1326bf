package ember

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMode is returned when a style names a motion model other than
// "gravity" or "radius".
var ErrUnknownMode = errors.New("ember: unknown motion mode")

// Style files hold named configurations:
//
//	styles:
//	  campfire:
//	    capacity: 250
//	    emissionRate: 80
//	    duration: infinity
//	    life: 3
//	    angle: 90
//	    mode: gravity
//	    gravity:
//	      speed: -60
//	    startSize: 54
//	    endSize: start
//	    startColor: {r: 0.76, g: 0.25, b: 0.12, a: 1}
//
// Absent duration, endSize and endRadius keys mean infinity and start.
type styleFile struct {
	Styles map[string]*styleDoc `yaml:"styles"`
}

type styleDoc struct {
	Capacity     int           `yaml:"capacity"`
	EmissionRate float64       `yaml:"emissionRate"`
	Duration     durationValue `yaml:"duration"`

	Life         float64 `yaml:"life"`
	LifeVariance float64 `yaml:"lifeVariance,omitempty"`

	SourcePosition   Vec2 `yaml:"sourcePosition,omitempty"`
	PositionVariance Vec2 `yaml:"positionVariance,omitempty"`

	Angle         float64 `yaml:"angle"`
	AngleVariance float64 `yaml:"angleVariance,omitempty"`

	Mode    string      `yaml:"mode"`
	Gravity *gravityDoc `yaml:"gravity,omitempty"`
	Radius  *radiusDoc  `yaml:"radius,omitempty"`

	StartSize         float64  `yaml:"startSize"`
	StartSizeVariance float64  `yaml:"startSizeVariance,omitempty"`
	EndSize           endValue `yaml:"endSize"`
	EndSizeVariance   float64  `yaml:"endSizeVariance,omitempty"`

	StartColor         Color `yaml:"startColor"`
	StartColorVariance Color `yaml:"startColorVariance,omitempty"`
	EndColor           Color `yaml:"endColor"`
	EndColorVariance   Color `yaml:"endColorVariance,omitempty"`

	StartSpin         float64 `yaml:"startSpin,omitempty"`
	StartSpinVariance float64 `yaml:"startSpinVariance,omitempty"`
	EndSpin           float64 `yaml:"endSpin,omitempty"`
	EndSpinVariance   float64 `yaml:"endSpinVariance,omitempty"`
}

type gravityDoc struct {
	Gravity                 Vec2    `yaml:"gravity,omitempty"`
	Speed                   float64 `yaml:"speed"`
	SpeedVariance           float64 `yaml:"speedVariance,omitempty"`
	RadialAccel             float64 `yaml:"radialAccel,omitempty"`
	RadialAccelVariance     float64 `yaml:"radialAccelVariance,omitempty"`
	TangentialAccel         float64 `yaml:"tangentialAccel,omitempty"`
	TangentialAccelVariance float64 `yaml:"tangentialAccelVariance,omitempty"`
	RotationIsDir           bool    `yaml:"rotationIsDir,omitempty"`
}

type radiusDoc struct {
	StartRadius             float64  `yaml:"startRadius"`
	StartRadiusVariance     float64  `yaml:"startRadiusVariance,omitempty"`
	EndRadius               endValue `yaml:"endRadius"`
	EndRadiusVariance       float64  `yaml:"endRadiusVariance,omitempty"`
	RotatePerSecond         float64  `yaml:"rotatePerSecond"`
	RotatePerSecondVariance float64  `yaml:"rotatePerSecondVariance,omitempty"`
}

// durationValue is a duration in seconds that reads and writes
// DurationInfinity as "infinity".
type durationValue float64

func (d durationValue) MarshalYAML() (any, error) {
	if d < 0 {
		return "infinity", nil
	}
	return float64(d), nil
}

func (d *durationValue) UnmarshalYAML(n *yaml.Node) error {
	v, err := decodeNamedFloat(n, "infinity", DurationInfinity)
	if err != nil {
		return err
	}
	*d = durationValue(v)
	return nil
}

// endValue is an end-of-life size or radius that reads and writes the
// "equal to start" sentinel as "start".
type endValue float64

func (v endValue) MarshalYAML() (any, error) {
	if v == SizeEqualToStart {
		return "start", nil
	}
	return float64(v), nil
}

func (v *endValue) UnmarshalYAML(n *yaml.Node) error {
	f, err := decodeNamedFloat(n, "start", SizeEqualToStart)
	if err != nil {
		return err
	}
	*v = endValue(f)
	return nil
}

func decodeNamedFloat(n *yaml.Node, name string, sentinel float64) (float64, error) {
	if n.Kind == yaml.ScalarNode && n.Value == name {
		return sentinel, nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}

func newStyleDoc() *styleDoc {
	return &styleDoc{
		Duration: DurationInfinity,
		EndSize:  endValue(SizeEqualToStart),
	}
}

func (d *styleDoc) config() (EmitterConfig, error) {
	cfg := EmitterConfig{
		Capacity:           d.Capacity,
		EmissionRate:       d.EmissionRate,
		Duration:           float64(d.Duration),
		Life:               d.Life,
		LifeVariance:       d.LifeVariance,
		SourcePosition:     d.SourcePosition,
		PositionVariance:   d.PositionVariance,
		Angle:              d.Angle,
		AngleVariance:      d.AngleVariance,
		StartSize:          d.StartSize,
		StartSizeVariance:  d.StartSizeVariance,
		EndSize:            float64(d.EndSize),
		EndSizeVariance:    d.EndSizeVariance,
		StartColor:         d.StartColor,
		StartColorVariance: d.StartColorVariance,
		EndColor:           d.EndColor,
		EndColorVariance:   d.EndColorVariance,
		StartSpin:          d.StartSpin,
		StartSpinVariance:  d.StartSpinVariance,
		EndSpin:            d.EndSpin,
		EndSpinVariance:    d.EndSpinVariance,
	}

	switch d.Mode {
	case "", ModeGravity.String():
		if d.Radius != nil {
			return cfg, errors.New("radius block in a gravity style")
		}
		var m GravityMotion
		if g := d.Gravity; g != nil {
			m = GravityMotion{
				Gravity:                 g.Gravity,
				Speed:                   g.Speed,
				SpeedVariance:           g.SpeedVariance,
				RadialAccel:             g.RadialAccel,
				RadialAccelVariance:     g.RadialAccelVariance,
				TangentialAccel:         g.TangentialAccel,
				TangentialAccelVariance: g.TangentialAccelVariance,
				RotationIsDir:           g.RotationIsDir,
			}
		}
		cfg.Motion = m
	case ModeRadius.String():
		if d.Gravity != nil {
			return cfg, errors.New("gravity block in a radius style")
		}
		m := RadiusMotion{EndRadius: RadiusEqualToStart}
		if r := d.Radius; r != nil {
			m = RadiusMotion{
				StartRadius:             r.StartRadius,
				StartRadiusVariance:     r.StartRadiusVariance,
				EndRadius:               float64(r.EndRadius),
				EndRadiusVariance:       r.EndRadiusVariance,
				RotatePerSecond:         r.RotatePerSecond,
				RotatePerSecondVariance: r.RotatePerSecondVariance,
			}
		}
		cfg.Motion = m
	default:
		return cfg, fmt.Errorf("%w %q", ErrUnknownMode, d.Mode)
	}
	return cfg, nil
}

// UnmarshalYAML decodes a radius block, defaulting endRadius to "start".
func (r *radiusDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain radiusDoc
	p := plain{EndRadius: endValue(RadiusEqualToStart)}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*r = radiusDoc(p)
	return nil
}

func docFromConfig(cfg EmitterConfig) *styleDoc {
	d := &styleDoc{
		Capacity:           cfg.Capacity,
		EmissionRate:       cfg.EmissionRate,
		Duration:           durationValue(cfg.Duration),
		Life:               cfg.Life,
		LifeVariance:       cfg.LifeVariance,
		SourcePosition:     cfg.SourcePosition,
		PositionVariance:   cfg.PositionVariance,
		Angle:              cfg.Angle,
		AngleVariance:      cfg.AngleVariance,
		Mode:               cfg.Mode().String(),
		StartSize:          cfg.StartSize,
		StartSizeVariance:  cfg.StartSizeVariance,
		EndSize:            endValue(cfg.EndSize),
		EndSizeVariance:    cfg.EndSizeVariance,
		StartColor:         cfg.StartColor,
		StartColorVariance: cfg.StartColorVariance,
		EndColor:           cfg.EndColor,
		EndColorVariance:   cfg.EndColorVariance,
		StartSpin:          cfg.StartSpin,
		StartSpinVariance:  cfg.StartSpinVariance,
		EndSpin:            cfg.EndSpin,
		EndSpinVariance:    cfg.EndSpinVariance,
	}
	if m, ok := cfg.Radius(); ok {
		d.Radius = &radiusDoc{
			StartRadius:             m.StartRadius,
			StartRadiusVariance:     m.StartRadiusVariance,
			EndRadius:               endValue(m.EndRadius),
			EndRadiusVariance:       m.EndRadiusVariance,
			RotatePerSecond:         m.RotatePerSecond,
			RotatePerSecondVariance: m.RotatePerSecondVariance,
		}
		return d
	}
	m, _ := cfg.Gravity()
	d.Gravity = &gravityDoc{
		Gravity:                 m.Gravity,
		Speed:                   m.Speed,
		SpeedVariance:           m.SpeedVariance,
		RadialAccel:             m.RadialAccel,
		RadialAccelVariance:     m.RadialAccelVariance,
		TangentialAccel:         m.TangentialAccel,
		TangentialAccelVariance: m.TangentialAccelVariance,
		RotationIsDir:           m.RotationIsDir,
	}
	return d
}

// UnmarshalYAML decodes a style, applying the defaults for absent keys.
func (d *styleDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain styleDoc
	p := (*plain)(newStyleDoc())
	if err := n.Decode(p); err != nil {
		return err
	}
	*d = styleDoc(*p)
	return nil
}

// ParseStyles decodes a style file held in memory.
func ParseStyles(data []byte) (map[string]EmitterConfig, error) {
	var f styleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ember: failed to parse styles: %w", err)
	}
	out := make(map[string]EmitterConfig, len(f.Styles))
	for name, doc := range f.Styles {
		if doc == nil {
			doc = newStyleDoc()
		}
		cfg, err := doc.config()
		if err != nil {
			return nil, fmt.Errorf("ember: style %q: %w", name, err)
		}
		out[name] = cfg
	}
	return out, nil
}

// LoadStyles reads a style file from r.
func LoadStyles(r io.Reader) (map[string]EmitterConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ember: failed to read styles: %w", err)
	}
	return ParseStyles(data)
}

// LoadStyleFile reads the style file at path.
func LoadStyleFile(path string) (map[string]EmitterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ember: failed to read styles: %w", err)
	}
	return ParseStyles(data)
}

// MarshalStyles encodes named configurations as a style file. Names are
// written in sorted order.
func MarshalStyles(styles map[string]EmitterConfig) ([]byte, error) {
	f := styleFile{Styles: make(map[string]*styleDoc, len(styles))}
	for name, cfg := range styles {
		f.Styles[name] = docFromConfig(cfg)
	}
	return encodeYAML(f)
}

// MarshalStyle encodes one configuration as a bare style document, without
// the enclosing styles map.
func MarshalStyle(cfg EmitterConfig) ([]byte, error) {
	return encodeYAML(docFromConfig(cfg))
}

// UnmarshalStyle decodes a bare style document written by MarshalStyle.
func UnmarshalStyle(data []byte) (EmitterConfig, error) {
	doc := newStyleDoc()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return EmitterConfig{}, fmt.Errorf("ember: failed to parse style: %w", err)
	}
	cfg, err := doc.config()
	if err != nil {
		return EmitterConfig{}, fmt.Errorf("ember: style: %w", err)
	}
	return cfg, nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("ember: failed to encode styles: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ember: failed to encode styles: %w", err)
	}
	return buf.Bytes(), nil
}
