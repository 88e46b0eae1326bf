package ember

import "testing"

func TestPresetNamesRoundTrip(t *testing.T) {
	for _, p := range append(Presets(), PresetNone) {
		got, err := ParsePreset(p.String())
		if err != nil {
			t.Fatalf("ParsePreset(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePreset(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParsePresetIgnoresCase(t *testing.T) {
	p, err := ParsePreset("FireWork")
	if err != nil || p != PresetFirework {
		t.Errorf("ParsePreset = %v, %v, want firework", p, err)
	}
	if _, err := ParsePreset("lava"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetStringOutOfRange(t *testing.T) {
	if got := Preset(200).String(); got != "Preset(200)" {
		t.Errorf("String = %q", got)
	}
}

func TestPresetsExcludeNone(t *testing.T) {
	ps := Presets()
	if len(ps) != 10 {
		t.Fatalf("len = %d, want 10", len(ps))
	}
	for _, p := range ps {
		if p == PresetNone {
			t.Fatal("Presets includes PresetNone")
		}
	}
}

func TestEveryPresetSpawns(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.String(), func(t *testing.T) {
			e := NewEngine(WithSeed(3))
			if err := e.ApplyPreset(p); err != nil {
				t.Fatal(err)
			}
			if e.Capacity() != p.Config().Capacity {
				t.Errorf("capacity = %d, want %d", e.Capacity(), p.Config().Capacity)
			}
			for range 25 {
				e.Tick(1.0 / 25)
			}
			if e.Count() == 0 {
				t.Error("no particles after one second")
			}
			if e.Count() > e.Capacity() {
				t.Errorf("count %d > capacity %d", e.Count(), e.Capacity())
			}
		})
	}
}

func TestVortexIsRadiusMode(t *testing.T) {
	e := NewEngine()
	if err := e.ApplyPreset(PresetVortex); err != nil {
		t.Fatal(err)
	}
	if e.Mode() != ModeRadius {
		t.Errorf("mode = %v, want radius", e.Mode())
	}
}

func TestExplosionStopsOnItsOwn(t *testing.T) {
	e := NewEngine(WithSeed(5))
	if err := e.ApplyPreset(PresetExplosion); err != nil {
		t.Fatal(err)
	}
	for range 5 {
		e.Tick(1.0 / 25)
	}
	if e.IsActive() {
		t.Error("explosion still active after its duration")
	}
	if e.Count() == 0 {
		t.Error("explosion left no particles")
	}
}

func TestApplyPresetNoneStops(t *testing.T) {
	e := NewEngine(WithSeed(1))
	if err := e.ApplyPreset(PresetFire); err != nil {
		t.Fatal(err)
	}
	e.Tick(0.5)
	if err := e.ApplyPreset(PresetNone); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateStopped || e.Count() != 0 {
		t.Errorf("state = %v, count = %d, want stopped and empty", e.State(), e.Count())
	}
	// The previous style is kept for a later Reset.
	if e.Config().Capacity != PresetFire.Config().Capacity {
		t.Errorf("config capacity = %d", e.Config().Capacity)
	}
}

func TestPresetConfigAccessors(t *testing.T) {
	if _, ok := PresetVortex.Config().Radius(); !ok {
		t.Error("vortex config has no radius parameters")
	}
	if PresetVortex.Config().Mode() != ModeRadius {
		t.Error("vortex mode is not radius")
	}
	byName := map[string]EmitterConfig{"fire": PresetFire.Config()}
	if _, ok := byName["fire"].Gravity(); !ok {
		t.Error("fire config has no gravity parameters")
	}
}
