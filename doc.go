// Package ember is a CPU particle simulation engine for 2D games and tools.
//
// Ember keeps a fixed-capacity pool of independently aging particles,
// spawns new ones at a configured rate, advances their motion and visual
// state every tick, and exposes a read-only snapshot of each live particle
// for an external renderer. The core never touches a graphics API; the
// [ebitenrender], [ggrender] and [termrender] packages draw snapshots with
// Ebitengine, gogpu/gg and tcell respectively.
//
// # Quick start
//
//	e := ember.NewEngine()
//	if err := e.ApplyPreset(ember.PresetFire); err != nil {
//		log.Fatal(err)
//	}
//	e.SetPosition(320, 400)
//
//	// each frame
//	e.Tick(1.0 / 60)
//	for _, p := range e.All() {
//		draw(p.WorldPosition(), p.Size, p.Rotation, p.Color)
//	}
//
// # Configuration
//
// An [EmitterConfig] describes what an effect looks like: emission rate,
// duration, lifetime, launch angle, size, color and spin, each with a
// variance sampled uniformly per particle at birth. Its Motion field picks
// one of two motion models:
//
//   - [GravityMotion] launches particles with a speed and accelerates them
//     by gravity plus radial and tangential components.
//   - [RadiusMotion] orbits particles around the emitter while their radius
//     moves linearly toward an end radius.
//
// Install a configuration with [Engine.SetStyle], which always discards the
// live particles. [Engine.Config] returns a pointer for tuning between
// ticks without a reset.
//
// Ready-made styles are available as [Preset] values, and styles can be
// authored as YAML with [LoadStyleFile] and [MarshalStyles]. The [store]
// package keeps named styles between runs.
//
// # Lifecycle
//
// An engine starts active. [Engine.Stop] ends spawning and lets live
// particles age out; a finite Duration stops the engine on its own.
// [Engine.Pause] suppresses births while the clock keeps running.
// [Engine.Reset] empties the pool and starts over.
//
// # Determinism
//
// Every engine owns its generator. Create it with [WithSeed] or call
// [Engine.Seed] to replay a simulation exactly, for example from a
// [Script].
//
// # Logging
//
// Ember is silent by default. Route its debug and warning records to any
// [slog.Handler] with [SetLogger], or per engine with [WithLogger].
//
// [ebitenrender]: https://pkg.go.dev/github.com/phanxgames/ember/ebitenrender
// [ggrender]: https://pkg.go.dev/github.com/phanxgames/ember/ggrender
// [termrender]: https://pkg.go.dev/github.com/phanxgames/ember/termrender
// [store]: https://pkg.go.dev/github.com/phanxgames/ember/store
package ember
