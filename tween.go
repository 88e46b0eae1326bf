package ember

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween eases up to four emitter properties toward target values. Create
// one with TweenPosition, TweenEmissionRate, TweenStartSize or
// TweenStartColor and call Update(dt) each frame, before Engine.Tick.
//
// A tween finishes early once its engine is stopped and has no live
// particles left. Several tweens may drive one engine as long as they
// touch different properties.
type Tween struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Engine
	Done   bool
}

// Update advances the tween by dt seconds and writes the eased values into
// the engine. Emission parameters only affect particles born afterwards.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if !t.target.active && t.target.count == 0 {
		t.Done = true
		return
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

func newTween(e *Engine, duration float32, fn ease.TweenFunc, fields []*float64, to []float64) *Tween {
	t := &Tween{count: len(fields), target: e}
	for i, f := range fields {
		t.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
		t.fields[i] = f
	}
	return t
}

// TweenPosition moves the emitter origin to (toX, toY). Particles already
// alive keep their birth origin, so a moving emitter leaves a trail.
func TweenPosition(e *Engine, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(e, duration, fn, []*float64{&e.x, &e.y}, []float64{toX, toY})
}

// TweenEmissionRate ramps the spawn rate, for example to fade a fire out.
func TweenEmissionRate(e *Engine, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(e, duration, fn, []*float64{&e.config.EmissionRate}, []float64{to})
}

// TweenStartSize animates the birth size of new particles.
func TweenStartSize(e *Engine, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(e, duration, fn, []*float64{&e.config.StartSize}, []float64{to})
}

// TweenStartColor animates the birth color of new particles.
func TweenStartColor(e *Engine, to Color, duration float32, fn ease.TweenFunc) *Tween {
	c := &e.config.StartColor
	return newTween(e, duration, fn,
		[]*float64{&c.R, &c.G, &c.B, &c.A},
		[]float64{to.R, to.G, to.B, to.A})
}
