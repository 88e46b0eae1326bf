package ember

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTickDT is the step used by script ticks that give no dt: 25 frames
// per second.
const DefaultTickDT = 1.0 / 25

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	DT     float64 `yaml:"dt,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Preset string  `yaml:"preset,omitempty"`
	Seed   uint64  `yaml:"seed,omitempty"`

	preset Preset
}

// scriptFile is the top-level structure of a script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script is a recorded sequence of engine operations. Running the same
// script against an engine with the same seed reproduces the same
// particles, which makes scripts useful for headless captures and tests.
//
//	steps:
//	  - {action: seed, seed: 7}
//	  - {action: preset, preset: fire}
//	  - {action: move, x: 320, y: 400}
//	  - {action: tick, dt: 0.04, frames: 50}
//	  - {action: snapshot, label: burning}
//	  - {action: stop}
//	  - {action: tick, frames: 100}
//	  - {action: snapshot, label: embers}
type Script struct {
	steps []scriptStep
}

// LoadScript parses a YAML (or JSON) script. Unknown actions and presets
// are rejected here rather than at run time.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ember: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("ember: parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "tick", "pause", "resume", "stop", "reset", "move", "snapshot", "seed":
		case "preset":
			p, err := ParsePreset(st.Preset)
			if err != nil {
				return nil, fmt.Errorf("ember: parse script: step %d: %w", i, err)
			}
			st.preset = p
		default:
			return nil, fmt.Errorf("ember: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes every step against e. A tick step runs Frames ticks (at
// least one) of DT seconds, or DefaultTickDT when DT is zero. A snapshot
// step calls onSnapshot with the step label and the engine; onSnapshot may
// be nil. Run stops at the first error.
func (s *Script) Run(e *Engine, onSnapshot func(label string, src Source) error) error {
	for i, st := range s.steps {
		switch st.Action {
		case "tick":
			dt := st.DT
			if dt == 0 {
				dt = DefaultTickDT
			}
			for range max(st.Frames, 1) {
				e.Tick(dt)
			}
		case "pause":
			e.Pause()
		case "resume":
			e.Resume()
		case "stop":
			e.Stop()
		case "reset":
			e.Reset()
		case "move":
			e.SetPosition(st.X, st.Y)
		case "seed":
			e.Seed(st.Seed)
		case "preset":
			if err := e.ApplyPreset(st.preset); err != nil {
				return fmt.Errorf("ember: script step %d: %w", i, err)
			}
		case "snapshot":
			if onSnapshot == nil {
				continue
			}
			if err := onSnapshot(st.Label, e); err != nil {
				return fmt.Errorf("ember: script step %d (%s): %w", i, st.Label, err)
			}
		}
	}
	return nil
}
